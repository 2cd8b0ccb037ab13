package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default
// configuration: one structured log line per request with method, path,
// outcome, and latency.
func Logging[G, S any]() handler.Middleware[G, S] {
	return LoggingWithConfig[G, S](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[G, S any](log *slog.Logger) handler.Middleware[G, S] {
	return LoggingWithConfig[G, S](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Errors raised downstream are logged and re-raised
// untouched, so the error boundary still sees them. On the success path
// the returned response is decorated so the log line carries the status
// the response actually wrote.
func LoggingWithConfig[G, S any](cfg LoggingConfig) handler.Middleware[G, S] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[G, S]) handler.HandlerFunc[G, S] {
		return func(ctx *handler.Context[G, S]) (handler.Response, error) {
			req := ctx.Request()
			if cfg.Skip != nil && cfg.Skip(req) {
				return next(ctx)
			}

			emit := func(status int, elapsed time.Duration, err error) {
				requestID, _ := GetRequestID(ctx)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(status),
					logger.Duration(elapsed),
					logger.RequestID(requestID),
					logger.Error(err),
				}

				level := cfg.LogLevel
				switch {
				case err != nil || status >= http.StatusInternalServerError:
					level = slog.LevelError
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case elapsed >= cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(ctx, level, "request", attrs...)
			}

			start := time.Now()
			resp, err := next(ctx)
			if err != nil || resp == nil {
				// The dispatcher renders the error handler's response
				// instead of ours, so the decorated path below never
				// runs; log here with the status the error maps to.
				emit(errorStatus(err), time.Since(start), err)
				return resp, err
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				renderErr := resp(ww, r)
				emit(ww.status, time.Since(start), renderErr)
				return renderErr
			}, nil
		}
	}
}

// errorStatus maps a raised error to the status the default error
// handler will respond with.
func errorStatus(err error) int {
	var appErr handler.Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// statusWriter captures the status a response writes.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}
