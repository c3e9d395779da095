// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. PendingShipmentWatchJob - Runs every minute and logs shipments that
// have been pending longer than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getPendingShipmentsHandler, alertAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watch job never mutates shipments; it only reads the pending backlog
// and logs. Query failures are logged and the next tick retries.
package jobs
