// Package routekit provides the routing and request-execution core of a
// small HTTP application toolkit: typed bidirectional URL patterns, an
// ordered first-match-wins route table, a layered per-request execution
// context, composable middleware, and lifecycle coordination for
// graceful shutdown.
//
// # Package Organization
//
//	github.com/dmitrymomot/routekit/core/pattern   - Typed URL patterns that both match and generate paths
//	github.com/dmitrymomot/routekit/core/settings  - Type-erased, name-keyed configuration store
//	github.com/dmitrymomot/routekit/core/handler   - Request context stack: handlers, middleware, errors
//	github.com/dmitrymomot/routekit/core/router    - Ordered route table with reverse URL generation
//	github.com/dmitrymomot/routekit/core/response  - Response constructors (text, HTML, JSON, redirect)
//	github.com/dmitrymomot/routekit/core/lifecycle - In-flight counting, shutdown flag, cleanup actions
//	github.com/dmitrymomot/routekit/core/app       - Options assembly and the request dispatcher
//	github.com/dmitrymomot/routekit/core/config    - Type-safe environment variable loading
//	github.com/dmitrymomot/routekit/core/logger    - Structured logging attribute helpers (slog)
//	github.com/dmitrymomot/routekit/core/server    - HTTP server with graceful shutdown
//	github.com/dmitrymomot/routekit/middleware     - Request ID and logging middleware
//
// # Example Usage
//
//	type Env struct{ DB *sql.DB }
//	type ReqState struct{ User string }
//
//	func main() {
//		env := &Env{}
//
//		a, err := app.New[*Env, ReqState](env,
//			app.WithRoutes[*Env, ReqState](func(r *router.Router[*Env, ReqState]) {
//				r.Get("/users/{id:int}", func(ctx *handler.Context[*Env, ReqState]) (handler.Response, error) {
//					id, err := ctx.ParamInt("id")
//					if err != nil {
//						return nil, err
//					}
//					return response.JSON(map[string]int64{"user_id": id}), nil
//				}).Name("user")
//			}),
//			app.WithMiddleware(
//				middleware.RequestID[*Env, ReqState](),
//				middleware.Logging[*Env, ReqState](),
//			),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//		defer stop()
//		if err := a.Run(ctx, ":8080"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Route declaration order is the dispatch order: the first route whose
// method and pattern both match wins, so declare specific routes before
// catch-alls.
package routekit
