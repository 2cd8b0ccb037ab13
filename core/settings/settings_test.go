package settings_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/settings"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns_stored_value", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		reg.Set("page_size", 25)

		v, err := settings.Get[int](reg, "page_size")
		require.NoError(t, err)
		assert.Equal(t, 25, v)
	})

	t.Run("wrong_type_is_distinct_from_not_found", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		reg.Set("x", 5)

		_, err := settings.Get[string](reg, "x")
		assert.ErrorIs(t, err, settings.ErrTypeMismatch)
		assert.NotErrorIs(t, err, settings.ErrNotFound)

		_, err = settings.Get[int](reg, "missing")
		assert.ErrorIs(t, err, settings.ErrNotFound)
	})

	t.Run("later_set_replaces_value_and_type", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		reg.Set("x", 5)
		reg.Set("x", "five")

		_, err := settings.Get[int](reg, "x")
		assert.ErrorIs(t, err, settings.ErrTypeMismatch)

		s, err := settings.Get[string](reg, "x")
		require.NoError(t, err)
		assert.Equal(t, "five", s)
	})

	t.Run("struct_values_round_trip", func(t *testing.T) {
		t.Parallel()

		type limits struct{ Max int }

		reg := settings.New()
		reg.Set("limits", limits{Max: 10})

		v, err := settings.Get[limits](reg, "limits")
		require.NoError(t, err)
		assert.Equal(t, 10, v.Max)
	})
}

func TestRegistry_GetOr(t *testing.T) {
	t.Parallel()

	reg := settings.New()
	reg.Set("present", 1)

	assert.Equal(t, 1, settings.GetOr(reg, "present", 9))
	assert.Equal(t, 9, settings.GetOr(reg, "absent", 9))
	assert.Equal(t, "d", settings.GetOr(reg, "present", "d"), "type mismatch falls back")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := settings.New()
	reg.Set("n", 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Set("n", i)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = settings.Get[int](reg, "n")
		}()
	}
	wg.Wait()

	assert.True(t, reg.Has("n"))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("merges_flat_document", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		reg.Set("existing", "before")

		err := settings.LoadYAML(reg, []byte("existing: after\npage_size: 25\nverbose: true\n"))
		require.NoError(t, err)

		s, err := settings.Get[string](reg, "existing")
		require.NoError(t, err)
		assert.Equal(t, "after", s)

		n, err := settings.Get[int](reg, "page_size")
		require.NoError(t, err)
		assert.Equal(t, 25, n)

		b, err := settings.Get[bool](reg, "verbose")
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		assert.Error(t, settings.LoadYAML(reg, []byte("a: [unclosed")))
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		reg := settings.New()
		assert.Error(t, settings.LoadYAMLFile(reg, "testdata/does-not-exist.yaml"))
	})
}
