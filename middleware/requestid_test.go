package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/app"
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
	"github.com/dmitrymomot/routekit/middleware"
)

type env struct{}
type reqState struct{}

type testContext = handler.Context[*env, reqState]

func newApp(t *testing.T, opts ...app.Option[*env, reqState]) *app.App[*env, reqState] {
	t.Helper()
	a, err := app.New(&env{}, opts...)
	require.NoError(t, err)
	return a
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates_uuid_and_sets_header", func(t *testing.T) {
		t.Parallel()

		var seen string
		a := newApp(t,
			app.WithMiddleware(middleware.RequestID[*env, reqState]()),
			app.WithRoutes(func(r *router.Router[*env, reqState]) {
				r.Get("/", func(ctx *testContext) (handler.Response, error) {
					id, ok := middleware.GetRequestID(ctx)
					require.True(t, ok)
					seen = id
					return response.NoContent(), nil
				})
			}),
		)

		w := httptest.NewRecorder()
		a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err, "generated id must be a uuid")
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses_incoming_id_when_configured", func(t *testing.T) {
		t.Parallel()

		a := newApp(t,
			app.WithMiddleware(middleware.RequestIDWithConfig[*env, reqState](middleware.RequestIDConfig{
				UseExisting: true,
			})),
			app.WithRoutes(func(r *router.Router[*env, reqState]) {
				r.Get("/", func(ctx *testContext) (handler.Response, error) {
					return response.NoContent(), nil
				})
			}),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "inbound-id")
		a.ServeHTTP(w, req)

		assert.Equal(t, "inbound-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("custom_generator_and_header", func(t *testing.T) {
		t.Parallel()

		a := newApp(t,
			app.WithMiddleware(middleware.RequestIDWithConfig[*env, reqState](middleware.RequestIDConfig{
				HeaderName: "X-Trace",
				Generator:  func() string { return "fixed" },
			})),
			app.WithRoutes(func(r *router.Router[*env, reqState]) {
				r.Get("/", func(ctx *testContext) (handler.Response, error) {
					return response.NoContent(), nil
				})
			}),
		)

		w := httptest.NewRecorder()
		a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "fixed", w.Header().Get("X-Trace"))
	})

	t.Run("skip_disables_middleware", func(t *testing.T) {
		t.Parallel()

		a := newApp(t,
			app.WithMiddleware(middleware.RequestIDWithConfig[*env, reqState](middleware.RequestIDConfig{
				Skip: func(r *http.Request) bool { return true },
			})),
			app.WithRoutes(func(r *router.Router[*env, reqState]) {
				r.Get("/", func(ctx *testContext) (handler.Response, error) {
					_, ok := middleware.GetRequestID(ctx)
					assert.False(t, ok)
					return response.NoContent(), nil
				})
			}),
		)

		w := httptest.NewRecorder()
		a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("X-Request-ID"))
	})
}
