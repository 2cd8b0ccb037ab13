package middleware

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/google/uuid"
)

// requestIDKey is the stash key for the request ID.
const requestIDKey = "routekit:request_id"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse an ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration:
// a new UUID per request, stored in the context stash and echoed in the
// X-Request-ID response header.
func RequestID[G, S any]() handler.Middleware[G, S] {
	return RequestIDWithConfig[G, S](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration.
func RequestIDWithConfig[G, S any](cfg RequestIDConfig) handler.Middleware[G, S] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next handler.HandlerFunc[G, S]) handler.HandlerFunc[G, S] {
		return func(ctx *handler.Context[G, S]) (handler.Response, error) {
			if cfg.Skip != nil && cfg.Skip(ctx.Request()) {
				return next(ctx)
			}

			var requestID string
			if cfg.UseExisting {
				requestID = ctx.Request().Header.Get(cfg.HeaderName)
			}
			if requestID == "" {
				requestID = cfg.Generator()
			}

			ctx.SetValue(requestIDKey, requestID)
			ctx.SetHeader(cfg.HeaderName, requestID)

			return next(ctx)
		}
	}
}

// GetRequestID retrieves the request ID stored by the middleware.
func GetRequestID[G, S any](ctx *handler.Context[G, S]) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
