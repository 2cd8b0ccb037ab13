package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/pattern"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
)

type env struct{}
type reqState struct{}

func okHandler(body string) handler.HandlerFunc[*env, reqState] {
	return func(ctx *handler.Context[*env, reqState]) (handler.Response, error) {
		return response.String(body), nil
	}
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("matches_method_and_pattern", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users/{id:int}", okHandler("user")).Name("user")
		require.NoError(t, r.Freeze())

		rt, params, ok := r.Dispatch(http.MethodGet, "/users/42")
		require.True(t, ok)
		require.NotNil(t, rt)

		id, ok := params.Int("id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("unparseable_capture_does_not_match", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users/{id:int}", okHandler("user"))

		_, _, ok := r.Dispatch(http.MethodGet, "/users/abc")
		assert.False(t, ok)
	})

	t.Run("method_mismatch_does_not_match", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users", okHandler("users"))

		_, _, ok := r.Dispatch(http.MethodPost, "/users")
		assert.False(t, ok)
	})

	t.Run("first_match_wins_over_declaration_order", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		a := r.Get("/a", okHandler("A"))
		r.Get("/{x:text}", okHandler("B"))

		rt, _, ok := r.Dispatch(http.MethodGet, "/a")
		require.True(t, ok)
		assert.Same(t, a, rt, "route A declared first must win")
	})

	t.Run("catch_all_declared_first_shadows", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		b := r.Get("/{x:text}", okHandler("B"))
		r.Get("/a", okHandler("A"))

		rt, _, ok := r.Dispatch(http.MethodGet, "/a")
		require.True(t, ok)
		assert.Same(t, b, rt, "declaration order is the only tie-break")
	})

	t.Run("unrestricted_route_matches_every_method", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.HandlePath("/any", okHandler("any"))

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			_, _, ok := r.Dispatch(method, "/any")
			assert.True(t, ok, method)
		}
	})
}

func TestRouter_URLFor(t *testing.T) {
	t.Parallel()

	t.Run("builds_url_for_named_route", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users/{id:int}", okHandler("user")).Name("user")

		url, err := r.URLFor("user", pattern.Params{pattern.IntValue("id", 7)})
		require.NoError(t, err)
		assert.Equal(t, "/users/7", url)
	})

	t.Run("unknown_name", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()

		_, err := r.URLFor("nope", nil)
		assert.ErrorIs(t, err, router.ErrURLNameNotFound)

		var urlErr *router.URLError
		require.ErrorAs(t, err, &urlErr)
		assert.Equal(t, "nope", urlErr.Route)
	})

	t.Run("empty_name_never_matches_unnamed_routes", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/unnamed", okHandler("unnamed"))

		_, err := r.URLFor("", nil)
		assert.ErrorIs(t, err, router.ErrURLNameNotFound)
	})

	t.Run("missing_param_wraps_cause", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users/{id:int}", okHandler("user")).Name("user")

		_, err := r.URLFor("user", nil)
		assert.ErrorIs(t, err, pattern.ErrNoParam)

		var urlErr *router.URLError
		require.ErrorAs(t, err, &urlErr)
		assert.Equal(t, "user", urlErr.Route)
	})

	t.Run("type_mismatch_wraps_cause", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/users/{id:int}", okHandler("user")).Name("user")

		_, err := r.URLFor("user", pattern.Params{pattern.TextValue("id", "7")})
		assert.ErrorIs(t, err, pattern.ErrParamTypeMismatch)
	})
}

func TestRouter_Freeze(t *testing.T) {
	t.Parallel()

	t.Run("rejects_duplicate_names", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		r.Get("/a", okHandler("a")).Name("dup")
		r.Get("/b", okHandler("b")).Name("dup")

		assert.ErrorIs(t, r.Freeze(), router.ErrDuplicateRouteName)
	})

	t.Run("frozen_table_rejects_registration", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		require.NoError(t, r.Freeze())

		assert.Panics(t, func() {
			r.Get("/late", okHandler("late"))
		})
	})

	t.Run("nil_handler_panics", func(t *testing.T) {
		t.Parallel()

		r := router.New[*env, reqState]()
		assert.Panics(t, func() {
			r.HandlePath("/x", nil)
		})
	})
}

func TestRouter_Extend(t *testing.T) {
	t.Parallel()

	base := router.New[*env, reqState]()
	base.Get("/a", okHandler("a"))

	extra := router.New[*env, reqState]()
	extra.Get("/b", okHandler("b"))

	base.Extend(extra)

	infos := base.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "/a", infos[0].Pattern)
	assert.Equal(t, "/b", infos[1].Pattern)
}
