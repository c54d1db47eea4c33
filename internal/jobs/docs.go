// Package jobs provides scheduled background tasks of the manufacturing
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob delivers committed domain events from the outbox to the
// in-process consumers (production order intake, order status sync). Its
// schedule is a six field cron expression with seconds; the default relays
// every two seconds.
//
// # Usage
//
//	manager := jobs.NewJobManager()
//	manager.Register("outbox relay", jobs.NewOutboxRelayJob(handler, cmd, "*/2 * * * * *", logger))
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed deliveries of
// single notifications are counted in the outbox and do not fail the run.
package jobs
