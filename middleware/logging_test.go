package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/settings"
	"github.com/dmitrymomot/routekit/middleware"
)

func newLogContext(t *testing.T, method, path string) *testContext {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	return handler.NewContext(req, &env{}, &reqState{}, nil, settings.New(), nil)
}

// render executes the response the middleware returned; the request log
// for a successful request is emitted here, after the status is known.
func render(t *testing.T, ctx *testContext, resp handler.Response) {
	t.Helper()
	require.NotNil(t, resp)
	require.NoError(t, resp(httptest.NewRecorder(), ctx.Request()))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs_method_and_path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*env, reqState](log)
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return response.NoContent(), nil
		})

		ctx := newLogContext(t, http.MethodGet, "/items")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=request")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/items")
		assert.Contains(t, out, "component=http")
	})

	t.Run("logs_written_status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*env, reqState](log)
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return response.StringWithStatus("teapot", http.StatusTeapot), nil
		})

		ctx := newLogContext(t, http.MethodGet, "/brew")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)

		assert.Contains(t, buf.String(), "status_code=418")
	})

	t.Run("defaults_to_200_when_header_not_written", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*env, reqState](log)
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return func(w http.ResponseWriter, r *http.Request) error {
				_, err := w.Write([]byte("ok"))
				return err
			}, nil
		})

		ctx := newLogContext(t, http.MethodGet, "/")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)

		assert.Contains(t, buf.String(), "status_code=200")
	})

	t.Run("error_is_logged_and_reraised", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		raised := errors.New("boom")

		mw := middleware.LoggingWithLogger[*env, reqState](log)
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return nil, raised
		})

		_, err := h(newLogContext(t, http.MethodPost, "/items"))
		assert.ErrorIs(t, err, raised)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "boom")
		assert.Contains(t, out, "status_code=500")
	})

	t.Run("structured_error_logs_its_status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*env, reqState](log)
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return nil, handler.ErrForbidden
		})

		_, err := h(newLogContext(t, http.MethodGet, "/admin"))
		require.Error(t, err)
		assert.Contains(t, buf.String(), "status_code=403")
	})

	t.Run("slow_request_logged_at_warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithConfig[*env, reqState](middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: time.Nanosecond,
		})
		h := mw(func(ctx *testContext) (handler.Response, error) {
			time.Sleep(time.Millisecond)
			return response.NoContent(), nil
		})

		ctx := newLogContext(t, http.MethodGet, "/slow")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "slow_request=true")
	})

	t.Run("skip_suppresses_logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		mw := middleware.LoggingWithConfig[*env, reqState](middleware.LoggingConfig{
			Logger: log,
			Skip:   func(r *http.Request) bool { return true },
		})
		h := mw(func(ctx *testContext) (handler.Response, error) {
			return response.NoContent(), nil
		})

		ctx := newLogContext(t, http.MethodGet, "/quiet")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)
		assert.Empty(t, buf.String())
	})

	t.Run("includes_request_id_when_present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		chain := middleware.RequestIDWithConfig[*env, reqState](middleware.RequestIDConfig{
			Generator: func() string { return "req-123" },
		})
		logging := middleware.LoggingWithLogger[*env, reqState](log)

		h := chain(logging(func(ctx *testContext) (handler.Response, error) {
			return response.NoContent(), nil
		}))

		ctx := newLogContext(t, http.MethodGet, "/")
		resp, err := h(ctx)
		require.NoError(t, err)
		render(t, ctx, resp)
		assert.Contains(t, buf.String(), "request_id=req-123")
	})
}
