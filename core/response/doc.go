// Package response provides constructors for common handler.Response
// values: plain text, HTML, JSON, bare status codes, and redirects.
// Each constructor returns a function that renders status, headers, and
// body to the wire; rendering errors flow back into the dispatcher's
// error boundary.
package response
