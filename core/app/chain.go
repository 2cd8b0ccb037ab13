package app

import "github.com/dmitrymomot/routekit/core/handler"

// chain builds a single handler from a middleware stack and endpoint.
// Middleware wraps in reverse order so the first configured stage runs
// first, and a stage that responds without calling next skips every
// later stage and the endpoint.
func chain[G, S any](middlewares []handler.Middleware[G, S], endpoint handler.HandlerFunc[G, S]) handler.HandlerFunc[G, S] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
