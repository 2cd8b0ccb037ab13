// Package logger provides slog attribute helpers for consistent
// structured logging keys across the toolkit. Helpers follow the empty
// Attr pattern: passing a nil error or empty id yields an attribute
// slog silently drops, so call sites need no nil checks.
package logger
