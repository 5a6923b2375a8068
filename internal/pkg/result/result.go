// Package result sequences fallible steps without nesting error checks.
//
// Result is a value that is either a success or a failure. Task is a deferred
// Result: nothing runs until Run is called with a context, and chained steps run one
// after another, each starting only after the previous one resolved. The first
// failure short-circuits every later step and becomes the outcome of the chain.
//
//	id, err := result.Chain(
//	    result.Lift(validate(cmd)),
//	    func(o order.Order) result.Task[kernel.ID] { return save(o) },
//	).Run(ctx).Unwrap()
package result

// Result holds either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure. A nil err is treated as a programming error and panics.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// Of adapts a conventional (value, error) return.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: value}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the failure or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the conventional (value, error) pair. On failure value is the zero T.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Bind feeds a success into next; a failure is passed through and next is not called.
func Bind[A, B any](r Result[A], next func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return next(r.value)
}

// Fold applies step to every item in order, threading the accumulator. It stops at
// the first failing step; later items are not visited.
func Fold[T, A any](items []T, seed A, step func(A, T) Result[A]) Result[A] {
	acc := Ok(seed)
	for _, item := range items {
		acc = Bind(acc, func(a A) Result[A] { return step(a, item) })
		if acc.err != nil {
			return acc
		}
	}
	return acc
}
