// Package app assembles independent configuration fragments (routes,
// settings, middleware, cleanup actions) into one frozen application
// and dispatches requests against it.
//
// Fragments combine in contribution order: route lists and middleware
// lists and cleanup lists concatenate, settings merge with later keys
// overriding earlier ones. New freezes the result; nothing about an App
// changes after that.
//
//	a, err := app.New[*Env, ReqState](env,
//		app.WithRoutes[*Env, ReqState](func(r *router.Router[*Env, ReqState]) {
//			r.Get("/users/{id:int}", showUser).Name("user")
//		}),
//		app.WithSetting[*Env, ReqState]("page_size", 25),
//		app.WithMiddleware(middleware.RequestID[*Env, ReqState]()),
//		app.WithCleanup[*Env, ReqState](closeDatabase),
//	)
//
// The dispatcher guarantees every request one response: unmatched
// requests reduce through handler.ErrNotFound, panics become internal
// errors, raised errors go through the configured error handler, and a
// failing error handler falls back to a fixed minimal 500. The
// lifecycle coordinator's in-flight counter is incremented on entry and
// decremented by defer, so the pairing holds under panics too.
//
// Run serves the app over core/server and, once the context is
// canceled, stops the listener, drains in-flight requests, and runs
// cleanups in registration order.
package app
