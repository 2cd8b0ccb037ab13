package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/lifecycle"
	"github.com/dmitrymomot/routekit/core/logger"
	"github.com/dmitrymomot/routekit/core/pattern"
	"github.com/dmitrymomot/routekit/core/router"
	"github.com/dmitrymomot/routekit/core/server"
	"github.com/dmitrymomot/routekit/core/settings"
)

// App is the frozen application configuration plus the dispatcher that
// executes requests against it. Everything reachable from an App is
// immutable after New except the settings registry (which synchronizes
// its own access) and the lifecycle coordinator.
type App[G, S any] struct {
	global       G
	routes       *router.Router[G, S]
	settings     *settings.Registry
	middlewares  []handler.Middleware[G, S]
	errorHandler handler.ErrorHandler[G, S]
	newState     func() *S
	life         *lifecycle.Coordinator
	log          *slog.Logger
	verbose      bool
}

// New assembles an App from the global context and configuration
// fragments, then freezes it. It fails when the route table does not
// validate (duplicate route names).
func New[G, S any](global G, opts ...Option[G, S]) (*App[G, S], error) {
	a := &App[G, S]{
		global:   global,
		routes:   router.New[G, S](),
		settings: settings.New(),
		newState: func() *S { return new(S) },
		life:     lifecycle.New(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.errorHandler == nil {
		a.errorHandler = defaultErrorHandler[G, S](a.verbose)
	}
	if err := a.routes.Freeze(); err != nil {
		return nil, err
	}
	return a, nil
}

// Global returns the shared application context.
func (a *App[G, S]) Global() G { return a.global }

// Settings returns the settings registry.
func (a *App[G, S]) Settings() *settings.Registry { return a.settings }

// Lifecycle returns the coordinator tracking in-flight requests and
// the shutdown flag.
func (a *App[G, S]) Lifecycle() *lifecycle.Coordinator { return a.life }

// Routes returns the registered routes in dispatch order.
func (a *App[G, S]) Routes() []router.RouteInfo { return a.routes.Routes() }

// URLFor builds the URL of a named route.
func (a *App[G, S]) URLFor(name string, params pattern.Params) (string, error) {
	return a.routes.URLFor(name, params)
}

// ServeHTTP dispatches one request: route lookup, context construction,
// middleware chain, handler execution, and error reduction. Every
// request yields exactly one response; any error escaping the chain is
// reduced by the configured error handler, and if that in turn fails
// a fixed minimal 500 is written.
func (a *App[G, S]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.life.Begin()
	defer a.life.End()

	ww := newResponseWriter(w)

	// Form data is an input, not a validation surface: a body that is
	// not form-encoded just leaves the form empty.
	_ = r.ParseForm()

	rt, params, matched := a.routes.Dispatch(r.Method, r.URL.Path)
	ctx := handler.NewContext(r, a.global, a.newState(), params, a.settings, a.routes)

	var resp handler.Response
	var err error
	if !matched {
		// Unmatched path and method mismatch are indistinguishable
		// here; both reduce through ErrNotFound.
		err = handler.ErrNotFound
	} else {
		resp, err = a.execute(ctx, rt.Handler())
	}

	if err != nil {
		resp = a.reduceError(ctx, err)
	}
	if resp == nil {
		resp = a.reduceError(ctx, handler.ErrInternal.WithMessage("nil response from handler"))
	}

	a.applyHeaders(ctx, ww)
	if renderErr := resp(ww, r); renderErr != nil {
		a.log.ErrorContext(r.Context(), "response render failed",
			logger.Method(r.Method), logger.Path(r.URL.Path), logger.Error(renderErr))
		if !ww.Written() {
			writeMinimalError(ww)
		}
	}
}

// execute runs the middleware chain around the handler, converting
// panics into internal errors so the lifecycle pairing and the error
// boundary both hold.
func (a *App[G, S]) execute(ctx *handler.Context[G, S], h handler.HandlerFunc[G, S]) (resp handler.Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			a.log.Error("panic in handler", logger.Error(toError(rec)), logger.Stack())
			resp, err = nil, handler.Internal(fmt.Sprintf("panic: %v", rec))
		}
	}()
	return chain(a.middlewares, h)(ctx)
}

// reduceError runs the configured error handler, falling back to the
// minimal response when it panics or yields nothing. The boundary
// itself must never fail.
func (a *App[G, S]) reduceError(ctx *handler.Context[G, S], err error) handler.Response {
	resp := func() (resp handler.Response) {
		defer func() {
			if rec := recover(); rec != nil {
				a.log.Error("panic in error handler", logger.Error(toError(rec)))
				resp = nil
			}
		}()
		return a.errorHandler(ctx, err)
	}()
	if resp == nil {
		return func(w http.ResponseWriter, r *http.Request) error {
			writeMinimalError(w)
			return nil
		}
	}
	return resp
}

// applyHeaders copies headers accumulated in the context onto the
// writer. Headers written before an error was raised are still applied
// to the error response.
func (a *App[G, S]) applyHeaders(ctx *handler.Context[G, S], w http.ResponseWriter) {
	for name, values := range ctx.Header() {
		w.Header()[name] = values
	}
}

// Shutdown signals the lifecycle coordinator, waits for in-flight
// requests to drain, and runs the registered cleanups once, in order.
// Cleanups run even when draining fails; the drain error and any
// cleanup errors are joined.
func (a *App[G, S]) Shutdown(ctx context.Context) error {
	start := time.Now()
	a.life.SignalShutdown()

	err := a.life.Drain(ctx)
	if err != nil {
		a.log.LogAttrs(ctx, slog.LevelWarn, "drain incomplete",
			logger.Event("shutdown"), logger.Key("inflight", a.life.InFlight()), logger.Error(err))
	}

	err = errors.Join(err, a.life.Cleanup(ctx))
	a.log.LogAttrs(ctx, slog.LevelInfo, "shutdown complete",
		logger.Event("shutdown"), logger.Elapsed(start), logger.Error(err))
	return err
}

// Run serves the app on addr until the context is canceled, then shuts
// the transport and the app down gracefully.
func (a *App[G, S]) Run(ctx context.Context, addr string, opts ...server.Option) error {
	opts = append([]server.Option{server.WithLogger(a.log)}, opts...)
	srv := server.New(addr, opts...)

	err := srv.Start(ctx, a)
	if stopErr := srv.Stop(); stopErr != nil {
		err = errors.Join(err, stopErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.ShutdownTimeout())
	defer cancel()
	if downErr := a.Shutdown(shutdownCtx); downErr != nil {
		err = errors.Join(err, downErr)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// defaultErrorHandler reduces errors to plain-text responses. Status
// comes from the structured Error kind when present, 500 otherwise.
// Messages of 5xx errors are replaced with the generic status text
// unless verbose rendering is enabled.
func defaultErrorHandler[G, S any](verbose bool) handler.ErrorHandler[G, S] {
	return func(ctx *handler.Context[G, S], err error) handler.Response {
		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var appErr handler.Error
		if errors.As(err, &appErr) {
			status = appErr.Status
			message = appErr.Message
		}
		if status >= http.StatusInternalServerError && !verbose {
			message = http.StatusText(status)
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			http.Error(w, message, status)
			return nil
		}
	}
}

func writeMinimalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
