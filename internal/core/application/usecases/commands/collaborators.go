// Package commands contains the orchestrators that change system state.
//
// Every handler follows the same pipeline, written as one result.Task chain:
// validate the command, load aggregates through the ports, check cross-aggregate
// rules, run a state transition, persist the new snapshot and publish an event.
// The first failing step ends the chain. Handlers always return errors from the
// errs taxonomy: collaborator faults become errs.RepositoryError, absence stays
// errs.ObjectNotFoundError.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/result"
)

// repositoryFault converts a collaborator error into the taxonomy. Not found and
// already converted errors pass through.
func repositoryFault(operation string) func(error) error {
	return func(err error) error {
		var repoErr *errs.RepositoryError
		if errors.Is(err, errs.ErrObjectNotFound) || errors.As(err, &repoErr) {
			return err
		}
		return errs.NewRepositoryError(operation, err)
	}
}

func loadOrder(orders ports.OrderRepository, id kernel.ID) result.Task[order.Order] {
	return result.Try(func(ctx context.Context) (order.Order, error) {
		return orders.FindByID(ctx, id)
	}, repositoryFault("find order"))
}

func saveOrder(orders ports.OrderRepository) func(order.Order) result.Task[order.Order] {
	return func(o order.Order) result.Task[order.Order] {
		return result.Try(func(ctx context.Context) (order.Order, error) {
			return o, orders.Save(ctx, o)
		}, repositoryFault("save order"))
	}
}

func loadShipping(shipments ports.ShippingRepository, id kernel.ID) result.Task[shipping.Shipping] {
	return result.Try(func(ctx context.Context) (shipping.Shipping, error) {
		return shipments.FindByID(ctx, id)
	}, repositoryFault("find shipping"))
}

func saveShipping(shipments ports.ShippingRepository) func(shipping.Shipping) result.Task[shipping.Shipping] {
	return func(s shipping.Shipping) result.Task[shipping.Shipping] {
		return result.Try(func(ctx context.Context) (shipping.Shipping, error) {
			return s, shipments.Save(ctx, s)
		}, repositoryFault("save shipping"))
	}
}

func publish(publisher ports.EventPublisher, event events.Event) result.Task[result.Unit] {
	return result.Exec(func(ctx context.Context) error {
		return publisher.Publish(ctx, event)
	}, repositoryFault("publish "+string(event.Kind())))
}

// validated starts a chain with a command that passed its own Validate.
func validated[C interface{ Validate() error }](cmd C) result.Task[C] {
	if err := cmd.Validate(); err != nil {
		return result.Lift(result.Fail[C](errs.NewValueIsInvalidErrorWithCause("command", err)))
	}
	return result.Succeed(cmd)
}

// settle runs task and logs the outcome. Anything still outside the taxonomy at
// this point is reported as a repository error.
func settle[T any](ctx context.Context, logger *slog.Logger, operation string, task result.Task[T]) (T, error) {
	value, err := task.Run(ctx).Unwrap()
	if err == nil {
		logger.DebugContext(ctx, "command succeeded", "operation", operation)
		return value, nil
	}

	kind := errs.KindOf(err)
	if kind == errs.KindUnknown {
		err = errs.NewRepositoryError(operation, err)
		kind = errs.KindRepository
	}

	level := slog.LevelInfo
	if kind == errs.KindRepository {
		level = slog.LevelError
	}
	logger.Log(ctx, level, "command failed", "operation", operation, "kind", kind.String(), "error", err)

	var zero T
	return zero, err
}

func loggerOrDefault(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

// transitionShipping loads a shipment, applies step and saves the result.
func transitionShipping(
	shipments ports.ShippingRepository,
	id kernel.ID,
	step func(shipping.Shipping) (shipping.Shipping, error),
) result.Task[shipping.Shipping] {
	next := result.ChainResult(loadShipping(shipments, id), func(s shipping.Shipping) result.Result[shipping.Shipping] {
		return result.Of(step(s))
	})
	return result.Chain(next, saveShipping(shipments))
}
