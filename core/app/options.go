package app

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/router"
)

// Option contributes one configuration fragment to an App. Fragments
// combine in application order: route and middleware and cleanup
// contributions concatenate, settings override by key, and the last
// error handler, logger, or state factory wins. New applies them all
// and freezes the result.
type Option[G, S any] func(*App[G, S])

// WithRoutes contributes routes. Multiple contributions append to the
// same table in declaration order, which is the dispatch order.
func WithRoutes[G, S any](fn func(r *router.Router[G, S])) Option[G, S] {
	return func(a *App[G, S]) {
		if fn != nil {
			fn(a.routes)
		}
	}
}

// WithSetting stores one settings value; a later contribution with the
// same name overrides the earlier one.
func WithSetting[G, S any](name string, value any) Option[G, S] {
	return func(a *App[G, S]) {
		a.settings.Set(name, value)
	}
}

// WithSettings merges a settings map, overriding by key.
func WithSettings[G, S any](values map[string]any) Option[G, S] {
	return func(a *App[G, S]) {
		for name, value := range values {
			a.settings.Set(name, value)
		}
	}
}

// WithMiddleware appends middleware. Execution order matches
// contribution order; the first stage that responds wins.
func WithMiddleware[G, S any](middlewares ...handler.Middleware[G, S]) Option[G, S] {
	return func(a *App[G, S]) {
		a.middlewares = append(a.middlewares, middlewares...)
	}
}

// WithCleanup appends a teardown action, run once at shutdown in
// contribution order.
func WithCleanup[G, S any](fn func(ctx context.Context) error) Option[G, S] {
	return func(a *App[G, S]) {
		a.life.OnCleanup(fn)
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler[G, S any](h handler.ErrorHandler[G, S]) Option[G, S] {
	return func(a *App[G, S]) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithLogger sets the logger used by the dispatcher.
func WithLogger[G, S any](log *slog.Logger) Option[G, S] {
	return func(a *App[G, S]) {
		if log != nil {
			a.log = log
		}
	}
}

// WithState sets the factory for per-request state. Without it each
// request starts from the zero value of S.
func WithState[G, S any](fn func() *S) Option[G, S] {
	return func(a *App[G, S]) {
		if fn != nil {
			a.newState = fn
		}
	}
}

// WithVerboseErrors makes the default error handler render the message
// text of internal (5xx) errors. Off by default so internal details
// never leak unless the deployment opts in.
func WithVerboseErrors[G, S any]() Option[G, S] {
	return func(a *App[G, S]) {
		a.verbose = true
	}
}
