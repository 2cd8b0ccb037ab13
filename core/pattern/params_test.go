package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/pattern"
)

func TestParams_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns_first_match", func(t *testing.T) {
		t.Parallel()

		params := pattern.Params{
			pattern.IntValue("id", 1),
			pattern.IntValue("id", 2),
		}

		p, ok := params.Get("id")
		require.True(t, ok)
		v, ok := p.Int()
		require.True(t, ok)
		assert.Equal(t, int64(1), v)
	})

	t.Run("missing_name", func(t *testing.T) {
		t.Parallel()

		params := pattern.Params{pattern.TextValue("a", "x")}

		_, ok := params.Get("b")
		assert.False(t, ok)
	})
}

func TestParam_Downcast(t *testing.T) {
	t.Parallel()

	t.Run("int_accessor_rejects_text", func(t *testing.T) {
		t.Parallel()

		p := pattern.TextValue("x", "42")

		_, ok := p.Int()
		assert.False(t, ok, "text value must not coerce to int")
	})

	t.Run("text_accessor_rejects_int", func(t *testing.T) {
		t.Parallel()

		p := pattern.IntValue("x", 42)

		_, ok := p.Text()
		assert.False(t, ok)
	})

	t.Run("display_representation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "42", pattern.IntValue("x", 42).String())
		assert.Equal(t, "abc", pattern.TextValue("x", "abc").String())
	})
}
