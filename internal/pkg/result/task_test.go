package result_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	calls []string
}

func (p *probe) step(name string, fail error) func(int) result.Task[int] {
	return func(v int) result.Task[int] {
		return func(context.Context) result.Result[int] {
			p.calls = append(p.calls, name)
			if fail != nil {
				return result.Fail[int](fail)
			}
			return result.Ok(v + 1)
		}
	}
}

func TestChain(t *testing.T) {
	t.Run("runs steps in written order", func(t *testing.T) {
		p := &probe{}

		first := result.Chain(result.Succeed(0), p.step("first", nil))
		second := result.Chain(first, p.step("second", nil))
		task := result.Chain(second, p.step("third", nil))

		v, err := task.Run(t.Context()).Unwrap()

		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []string{"first", "second", "third"}, p.calls)
	})

	t.Run("failure of second step skips the third", func(t *testing.T) {
		p := &probe{}
		boom := errors.New("second failed")

		first := result.Chain(result.Succeed(0), p.step("first", nil))
		second := result.Chain(first, p.step("second", boom))
		task := result.Chain(second, p.step("third", nil))

		_, err := task.Run(t.Context()).Unwrap()

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"first", "second"}, p.calls)
	})

	t.Run("is deferred until Run", func(t *testing.T) {
		p := &probe{}

		task := result.Chain(result.Succeed(0), p.step("only", nil))

		assert.Empty(t, p.calls)
		task.Run(t.Context())
		assert.Equal(t, []string{"only"}, p.calls)
	})
}

func TestMap(t *testing.T) {
	v, err := result.Map(result.Succeed(2), func(v int) string { return fmt.Sprint(v * 10) }).Run(t.Context()).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "20", v)

	boom := errors.New("boom")
	mapped := false
	_, err = result.Map(result.Lift(result.Fail[int](boom)), func(int) int {
		mapped = true
		return 0
	}).Run(t.Context()).Unwrap()
	require.ErrorIs(t, err, boom)
	assert.False(t, mapped)
}

func TestTry(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("converted: %w", err) }

	t.Run("passes success through", func(t *testing.T) {
		v, err := result.Try(func(context.Context) (string, error) { return "ok", nil }, wrap).Run(t.Context()).Unwrap()

		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("converts returned error", func(t *testing.T) {
		boom := errors.New("io")

		_, err := result.Try(func(context.Context) (string, error) { return "", boom }, wrap).Run(t.Context()).Unwrap()

		require.ErrorIs(t, err, boom)
		assert.Equal(t, "converted: io", err.Error())
	})

	t.Run("converts panic", func(t *testing.T) {
		_, err := result.Try(func(context.Context) (string, error) { panic("disk on fire") }, wrap).Run(t.Context()).Unwrap()

		require.Error(t, err)
		assert.Equal(t, "converted: panic: disk on fire", err.Error())
	})

	t.Run("keeps original error when converter returns nil", func(t *testing.T) {
		boom := errors.New("io")

		_, err := result.Try(func(context.Context) (int, error) { return 0, boom }, func(error) error { return nil }).
			Run(t.Context()).Unwrap()

		require.ErrorIs(t, err, boom)
	})

	t.Run("receives the chain context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(t.Context(), key{}, "value")

		v, err := result.Try(func(ctx context.Context) (any, error) { return ctx.Value(key{}), nil }, wrap).Run(ctx).Unwrap()

		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})
}

func TestExec(t *testing.T) {
	calls := 0
	_, err := result.Exec(func(context.Context) error {
		calls++
		return nil
	}, func(err error) error { return err }).Run(t.Context()).Unwrap()

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTap(t *testing.T) {
	var seen int
	effect := func(v int) result.Task[result.Unit] {
		return func(context.Context) result.Result[result.Unit] {
			seen = v
			return result.Ok(result.Unit{})
		}
	}

	v, err := result.Tap(result.Succeed(9), effect).Run(t.Context()).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 9, seen)

	boom := errors.New("publish failed")
	_, err = result.Tap(result.Succeed(9), func(int) result.Task[result.Unit] {
		return result.Lift(result.Fail[result.Unit](boom))
	}).Run(t.Context()).Unwrap()
	require.ErrorIs(t, err, boom)
}

func TestChainResult(t *testing.T) {
	v, err := result.ChainResult(result.Succeed(1), func(v int) result.Result[int] {
		return result.Ok(v + 1)
	}).Run(t.Context()).Unwrap()

	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestMapErr(t *testing.T) {
	boom := errors.New("boom")

	_, err := result.MapErr(result.Lift(result.Fail[int](boom)), func(err error) error {
		return fmt.Errorf("mapped: %w", err)
	}).Run(t.Context()).Unwrap()

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "mapped: boom", err.Error())

	v, err := result.MapErr(result.Succeed(1), func(error) error { return boom }).Run(t.Context()).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRun_NilTask(t *testing.T) {
	var task result.Task[int]

	_, err := task.Run(t.Context()).Unwrap()

	require.Error(t, err)
}
