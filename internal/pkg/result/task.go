package result

import (
	"context"
	"errors"
	"fmt"
)

// Task is a deferred computation resolving to a Result.
type Task[T any] func(ctx context.Context) Result[T]

var errNilTask = errors.New("result: nil task")

// Unit is the value of tasks run only for their effect.
type Unit struct{}

// Run executes the task. A nil Task resolves to a failure instead of panicking.
func (t Task[T]) Run(ctx context.Context) Result[T] {
	if t == nil {
		return Fail[T](errNilTask)
	}
	return t(ctx)
}

// Lift turns an already computed Result into a Task.
func Lift[T any](r Result[T]) Task[T] {
	return func(context.Context) Result[T] { return r }
}

// Succeed is Lift(Ok(value)).
func Succeed[T any](value T) Task[T] {
	return Lift(Ok(value))
}

// Try wraps a collaborator call. Any returned error and any panic raised by op are
// converted through onFault, so raw faults never leave the chain unconverted.
func Try[T any](op func(ctx context.Context) (T, error), onFault func(error) error) Task[T] {
	return func(ctx context.Context) (res Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = Fail[T](convert(onFault, fmt.Errorf("panic: %v", rec)))
			}
		}()

		value, err := op(ctx)
		if err != nil {
			return Fail[T](convert(onFault, err))
		}
		return Ok(value)
	}
}

// Exec is Try for operations that only return an error.
func Exec(op func(ctx context.Context) error, onFault func(error) error) Task[Unit] {
	return Try(func(ctx context.Context) (Unit, error) {
		return Unit{}, op(ctx)
	}, onFault)
}

// Map transforms the success value of t.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) Result[B] {
		r := t.Run(ctx)
		if r.err != nil {
			return Result[B]{err: r.err}
		}
		return Ok(f(r.value))
	}
}

// Chain runs next with the success value of t. If t fails, next is never invoked.
func Chain[A, B any](t Task[A], next func(A) Task[B]) Task[B] {
	return func(ctx context.Context) Result[B] {
		r := t.Run(ctx)
		if r.err != nil {
			return Result[B]{err: r.err}
		}
		return next(r.value).Run(ctx)
	}
}

// ChainResult is Chain for a synchronous next step.
func ChainResult[A, B any](t Task[A], next func(A) Result[B]) Task[B] {
	return Chain(t, func(a A) Task[B] { return Lift(next(a)) })
}

// Tap runs effect with the success value of t and, if the effect succeeds, resolves
// to the original value.
func Tap[A, B any](t Task[A], effect func(A) Task[B]) Task[A] {
	return Chain(t, func(a A) Task[A] {
		return Map(effect(a), func(B) A { return a })
	})
}

// MapErr transforms the failure of t; successes pass through.
func MapErr[T any](t Task[T], f func(error) error) Task[T] {
	return func(ctx context.Context) Result[T] {
		r := t.Run(ctx)
		if r.err != nil {
			return Fail[T](convert(f, r.err))
		}
		return r
	}
}

func convert(f func(error) error, err error) error {
	if converted := f(err); converted != nil {
		return converted
	}
	return err
}
