// Package jobs provides the scheduled background tasks of the fulfillment service.
//
// Jobs are built on github.com/robfig/cron/v3 with second resolution and log
// through log/slog.
//
// # Available Jobs
//
//  1. ShipmentProgressJob advances open shipments one step per tick
//     (SHIPMENT_PROGRESS_SCHEDULE, every 10 seconds by default).
//  2. OutboxRelayJob drains the PostgreSQL event outbox into a Sink every 5 seconds.
//     It only runs with the postgres storage driver.
//
// # Usage
//
//	progress := jobs.NewShipmentProgressJob(advanceHandler, cfg.ShipmentProgressSchedule, 0, logger)
//	jobManager := jobs.NewJobManager(progress)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the next tick runs as usual. Both jobs expose
// RunOnce so a single tick can be driven without the scheduler.
package jobs
