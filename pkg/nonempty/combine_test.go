package nonempty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/nonempty"
)

func add(a, b int) int { return a + b }

func TestVectorCombine(t *testing.T) {
	t.Run("applies the op elementwise", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2, 3})
		require.NoError(t, err)
		y, err := nonempty.New([]int{10, 20, 30})
		require.NoError(t, err)

		sum, err := x.Combine(add, y)
		require.NoError(t, err)
		assert.Equal(t, []int{11, 22, 33}, sum.Items())
	})

	t.Run("recycles the shorter payload", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2, 3, 4})
		require.NoError(t, err)
		y, err := nonempty.New([]int{10})
		require.NoError(t, err)

		sum, err := x.Combine(add, y)
		require.NoError(t, err)
		assert.Equal(t, []int{11, 12, 13, 14}, sum.Items())
	})

	t.Run("leaves both operands untouched", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2})
		require.NoError(t, err)
		y, err := nonempty.New([]int{3, 4})
		require.NoError(t, err)

		_, err = x.Combine(add, y)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, x.Items())
		assert.Equal(t, []int{3, 4}, y.Items())
	})
}

func TestVectorCombineValues(t *testing.T) {
	t.Run("combines with a raw right-hand payload", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2, 3})
		require.NoError(t, err)

		sum, err := x.CombineValues(add, []int{1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4}, sum.Items())
	})

	t.Run("nil raw payload fails with ErrNilPayload without mutation", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2, 3})
		require.NoError(t, err)

		_, err = x.CombineValues(add, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, nonempty.ErrNilPayload)
		assert.Equal(t, []int{1, 2, 3}, x.Items())
	})

	t.Run("empty raw payload fails with ErrZeroLength", func(t *testing.T) {
		x, err := nonempty.New([]int{1, 2, 3})
		require.NoError(t, err)

		_, err = x.CombineValues(add, []int{})
		assert.ErrorIs(t, err, nonempty.ErrZeroLength)
	})
}

func TestValuesCombine(t *testing.T) {
	t.Run("combines a raw left-hand payload", func(t *testing.T) {
		y, err := nonempty.New([]int{10, 20})
		require.NoError(t, err)

		diff, err := nonempty.ValuesCombine(func(a, b int) int { return a - b }, []int{100, 100}, y)
		require.NoError(t, err)
		assert.Equal(t, []int{90, 80}, diff.Items())
	})

	t.Run("nil raw payload fails with ErrNilPayload", func(t *testing.T) {
		y, err := nonempty.New([]int{10, 20})
		require.NoError(t, err)

		_, err = nonempty.ValuesCombine(add, nil, y)
		assert.ErrorIs(t, err, nonempty.ErrNilPayload)
	})
}

func TestTextCombine(t *testing.T) {
	join := func(a, b string) string { return a + b }

	t.Run("applies the op elementwise", func(t *testing.T) {
		x, err := nonempty.NewText([]string{"a", "b"})
		require.NoError(t, err)
		y, err := nonempty.NewText([]string{"1", "2"})
		require.NoError(t, err)

		got, err := x.Combine(join, y)
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "b2"}, got.Strings())
	})

	t.Run("fails when the op blanks every element", func(t *testing.T) {
		x, err := nonempty.NewText([]string{"a", "b"})
		require.NoError(t, err)
		y, err := nonempty.NewText([]string{"x"})
		require.NoError(t, err)

		blank := func(a, b string) string { return "" }
		_, err = x.Combine(blank, y)
		require.Error(t, err)
		assert.ErrorIs(t, err, nonempty.ErrAllBlank)
		assert.Equal(t, []string{"a", "b"}, x.Strings())
	})

	t.Run("nil raw payload fails with ErrNilPayload", func(t *testing.T) {
		x, err := nonempty.NewText([]string{"a"})
		require.NoError(t, err)

		_, err = x.CombineStrings(join, nil)
		assert.ErrorIs(t, err, nonempty.ErrNilPayload)

		_, err = nonempty.StringsCombine(join, nil, x)
		assert.ErrorIs(t, err, nonempty.ErrNilPayload)
	})
}
