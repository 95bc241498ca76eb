package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

func positive(n, _ int, _ []int) bool { return n > 0 }

func TestEvery(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence is vacuously true", func(t *testing.T) {
		ok, err := dispatch.Every(positive, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = dispatch.Every(positive, []int{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("all satisfy", func(t *testing.T) {
		ok, err := dispatch.Every(positive, []int{1, 2, 3})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("short-circuits on first failure", func(t *testing.T) {
		var visited []int
		ok, err := dispatch.Every(func(n, i int, _ []int) bool {
			visited = append(visited, i)
			return n > 0
		}, []int{1, -1, 2, 3})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []int{0, 1}, visited)
	})

	t.Run("snapshot does not observe mutation", func(t *testing.T) {
		seq := []int{1, 2, 3}
		ok, err := dispatch.Every(func(n, i int, snapshot []int) bool {
			seq[len(seq)-1] = -100
			return snapshot[len(snapshot)-1] == 3
		}, seq)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("nil predicate is an argument error", func(t *testing.T) {
		_, err := dispatch.Every[int](nil, []int{1})
		require.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	})
}

func TestEveryValue(t *testing.T) {
	t.Parallel()

	isNumber := func(v any, _ int, _ []any) bool { return dispatch.KindNumber.Matches(v) }

	t.Run("heterogeneous slice", func(t *testing.T) {
		ok, err := dispatch.EveryValue(isNumber, []any{1, 2.5, uint(3)})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = dispatch.EveryValue(isNumber, []any{1, "2", 3})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("typed slice", func(t *testing.T) {
		ok, err := dispatch.EveryValue(isNumber, []float64{1, 2})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-sequence is an argument error wrapping the mismatch", func(t *testing.T) {
		_, err := dispatch.EveryValue(isNumber, "123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, dispatch.ErrInvalidArgument))
		assert.True(t, errors.Is(err, dispatch.ErrTypeMismatch))

		var argErr *dispatch.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "seq", argErr.Name)
		assert.Equal(t, dispatch.KindText, argErr.Kind)
	})

	t.Run("nil predicate", func(t *testing.T) {
		_, err := dispatch.EveryValue(nil, []int{1})
		require.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	})
}

func TestAsArgumentError(t *testing.T) {
	t.Parallel()

	_, mismatch := dispatch.IfText(3, func(s string) string { return s })
	err := dispatch.AsArgumentError("name", 3, mismatch)
	require.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	require.ErrorIs(t, err, dispatch.ErrTypeMismatch)
	assert.Equal(t, `invalid argument "name": expected kind text, got number (int): expected kind text, got number (int)`, err.Error())

	assert.NoError(t, dispatch.AsArgumentError("name", 3, nil))

	other := errors.New("boom")
	assert.Same(t, other, dispatch.AsArgumentError("name", 3, other))

	argErr := dispatch.NewArgumentError("next", nil, "expected a continuation")
	assert.Same(t, argErr, dispatch.AsArgumentError("name", 3, argErr))
}
