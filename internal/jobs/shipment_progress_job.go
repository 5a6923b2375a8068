package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultShipmentProgressSchedule = "*/10 * * * * *"
	DefaultShipmentProgressBatch    = 100
)

// ShipmentProgressJob plays the carrier: on every tick it moves open shipments
// one step along pending, preparing, shipped, delivered.
type ShipmentProgressJob struct {
	handler   *commands.AdvanceShipmentsCommandHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewShipmentProgressJob uses a six field cron schedule (with seconds).
// Empty schedule and non-positive batchSize fall back to the defaults.
func NewShipmentProgressJob(
	handler *commands.AdvanceShipmentsCommandHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *ShipmentProgressJob {
	if schedule == "" {
		schedule = DefaultShipmentProgressSchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultShipmentProgressBatch
	}
	return &ShipmentProgressJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "shipment_progress_job"),
	}
}

func (j *ShipmentProgressJob) Name() string {
	return "shipment progress"
}

func (j *ShipmentProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("Shipment progress run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Shipment progress job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce performs a single tick outside the scheduler.
func (j *ShipmentProgressJob) RunOnce(ctx context.Context) (commands.AdvanceShipmentsReport, error) {
	cmd, err := commands.NewAdvanceShipmentsCommand(j.batchSize)
	if err != nil {
		return commands.AdvanceShipmentsReport{}, err
	}
	return j.handler.Handle(ctx, cmd)
}

// Stop waits for a running tick to finish.
func (j *ShipmentProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Shipment progress job stopped")
}
