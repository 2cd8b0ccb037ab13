// Package handler defines the execution environment every route handler
// and middleware runs inside: a layered stack of error propagation,
// immutable per-request context, and mutable request-scoped state.
//
// The three layers map onto plain Go:
//
//   - the error channel is the second return value of HandlerFunc;
//     returning a non-nil error short-circuits the rest of the chain
//     until Catch or the dispatcher's error boundary intercepts it;
//   - the immutable layer is the read-only surface of *Context: the
//     shared global context, the request and its form data, route
//     parameters, settings, and the reverse router;
//   - the mutable layer is the per-request state value, the outgoing
//     header map, and the untyped stash, owned exclusively by the
//     goroutine handling the request, so no synchronization is needed.
//
// State mutations committed before a raise stay visible to whoever
// catches the error:
//
//	resp, err := handler.Catch(ctx, protected, func(ctx *handler.Context[G, S], err error) (handler.Response, error) {
//		// headers and state written by protected before the raise
//		// are still present here
//		return response.String("recovered"), nil
//	})
//
// Context is generic over the application's global context type G and
// its request state type S, following the toolkit-wide pattern of
// type-safe custom contexts.
package handler
