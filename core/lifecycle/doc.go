// Package lifecycle coordinates graceful teardown across concurrently
// executing requests: an atomic in-flight counter, an advisory shutdown
// flag, and an ordered list of cleanup actions run once.
//
// The dispatcher increments the counter when a request begins and
// decrements it via defer when it finishes, so the pairing holds even
// when a handler panics. A supervisor signals shutdown, drains the
// counter, then runs cleanups:
//
//	life.SignalShutdown()
//	if err := life.Drain(ctx); err != nil { ... }
//	if err := life.Cleanup(ctx); err != nil { ... }
package lifecycle
