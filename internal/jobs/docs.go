// Package jobs provides scheduled background tasks for the order management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. PurgeDeletedOrdersJob - Permanently removes orders that were soft deleted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge job schedule is configurable via a six-field cron expression with
// seconds precision. The default "0 0 0 * * *" runs the purge once a day at
// midnight, which keeps the orders table free of soft deleted rows without
// putting load on the database during business hours.
//
// # Error Handling
//
// - Purge job failures are logged and retried on the next scheduled run
// - Failed job starts abort application startup
package jobs
