package result_test

import (
	"errors"
	"strconv"
	"testing"

	"fulfillment/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	ok := result.Of(5, nil)
	v, err := ok.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.True(t, ok.IsOk())

	boom := errors.New("boom")
	failed := result.Of(5, boom)
	v, err = failed.Unwrap()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, v)
	assert.False(t, failed.IsOk())
	assert.Equal(t, boom, failed.Err())
}

func TestFail_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { result.Fail[int](nil) })
}

func TestBind(t *testing.T) {
	double := func(v int) result.Result[int] { return result.Ok(v * 2) }

	v, err := result.Bind(result.Ok(21), double).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	called := false
	boom := errors.New("boom")
	_, err = result.Bind(result.Fail[int](boom), func(int) result.Result[int] {
		called = true
		return result.Ok(0)
	}).Unwrap()
	require.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestFold(t *testing.T) {
	t.Run("accumulates in order", func(t *testing.T) {
		r := result.Fold([]int{1, 2, 3}, "", func(acc string, item int) result.Result[string] {
			return result.Ok(acc + strconv.Itoa(item))
		})

		v, err := r.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, "123", v)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		visited := make([]int, 0)
		boom := errors.New("boom at 2")

		r := result.Fold([]int{1, 2, 3}, 0, func(acc int, item int) result.Result[int] {
			visited = append(visited, item)
			if item == 2 {
				return result.Fail[int](boom)
			}
			return result.Ok(acc + item)
		})

		require.ErrorIs(t, r.Err(), boom)
		assert.Equal(t, []int{1, 2}, visited)
	})

	t.Run("empty input yields seed", func(t *testing.T) {
		v, err := result.Fold([]int{}, 7, func(int, int) result.Result[int] { return result.Ok(0) }).Unwrap()
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})
}
