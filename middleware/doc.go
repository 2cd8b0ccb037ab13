// Package middleware provides cross-cutting request middleware for the
// toolkit's handler chain: per-request IDs and structured request
// logging.
//
// Middleware is generic over the application's global context and
// request state types, matching the handler package:
//
//	app.WithMiddleware(
//		middleware.RequestID[*Env, ReqState](),
//		middleware.Logging[*Env, ReqState](),
//	)
//
// Ordering is significant: stages run in configuration order and the
// first stage that responds terminates the chain.
package middleware
