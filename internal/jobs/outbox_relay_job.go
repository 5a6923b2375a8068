package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/postgres/outbox"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	DefaultOutboxRelaySchedule = "*/5 * * * * *"
	outboxRelayBatch           = 100
)

// OutboxStore is the part of the outbox the relay drains.
type OutboxStore interface {
	Pending(ctx context.Context, limit int) ([]outbox.EventDTO, error)
	MarkDispatched(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// Sink receives every relayed event. It returns an error to keep the event pending.
type Sink func(ctx context.Context, env events.Envelope) error

// OutboxRelayJob forwards stored events to a sink and marks them dispatched.
type OutboxRelayJob struct {
	store  OutboxStore
	sink   Sink
	clock  kernel.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOutboxRelayJob falls back to a sink that writes each event to logger.
func NewOutboxRelayJob(store OutboxStore, sink Sink, clock kernel.Clock, logger *slog.Logger) *OutboxRelayJob {
	logger = logger.With("component", "outbox_relay_job")
	if sink == nil {
		sink = LogSink(logger)
	}
	return &OutboxRelayJob{
		store:  store,
		sink:   sink,
		clock:  clock,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
}

// LogSink writes the event envelope as a structured log record.
func LogSink(logger *slog.Logger) Sink {
	return func(ctx context.Context, env events.Envelope) error {
		logger.InfoContext(ctx, "domain event",
			"kind", string(env.Kind),
			"aggregate_id", env.AggregateID,
			"occurred_at", env.OccurredAt,
			"payload", string(env.Payload),
		)
		return nil
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay"
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(DefaultOutboxRelaySchedule, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("Outbox relay run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started")
	return nil
}

// RunOnce relays one batch and returns how many events were dispatched. Events
// after the first sink failure stay pending for the next run.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (int, error) {
	pending, err := j.store.Pending(ctx, outboxRelayBatch)
	if err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(pending))
	var sinkErr error
	for _, dto := range pending {
		if sinkErr = j.sink(ctx, dto.Envelope()); sinkErr != nil {
			break
		}
		ids = append(ids, dto.ID)
	}

	if err = j.store.MarkDispatched(ctx, ids, j.clock.Now()); err != nil {
		return 0, err
	}
	return len(ids), sinkErr
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
