package handler

import "net/http"

// Response renders an HTTP response: it sets status, headers, and body
// on the writer. Any value usable as a response body is expressed as a
// Response; rendering errors surface through the framework's error
// boundary, not the handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a request handler running inside the request context
// stack. It yields a response or raises an error; a raised error
// short-circuits the rest of the chain and is reduced to a response by
// the dispatcher's error handler unless caught earlier with Catch.
type HandlerFunc[G, S any] func(ctx *Context[G, S]) (Response, error)

// Middleware wraps handlers to add cross-cutting behavior. A middleware
// that returns a response without calling next terminates the chain:
// later middleware and the route handler do not run.
type Middleware[G, S any] func(next HandlerFunc[G, S]) HandlerFunc[G, S]

// ErrorHandler reduces a raised error to a response. It runs inside the
// same request context stack as the handler that raised.
type ErrorHandler[G, S any] func(ctx *Context[G, S], err error) Response

// Catch runs fn and, when it raises, runs recover with the raised error
// against the same context. Mutable request state and headers written
// before the raise remain visible to the recovery. A successful fn
// passes through untouched.
func Catch[G, S any](ctx *Context[G, S], fn HandlerFunc[G, S], recover func(ctx *Context[G, S], err error) (Response, error)) (Response, error) {
	resp, err := fn(ctx)
	if err != nil {
		return recover(ctx, err)
	}
	return resp, nil
}
