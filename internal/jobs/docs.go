// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order fulfillment service.
//
// # Available Jobs
//
// 1. ShipmentTrackingJob - Runs every minute to poll the carrier aggregator
// for open API shipments and advance their local status machine.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(shipmentRepo, aggregatorClient, advanceHandler, logger)
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
// - A failure on one shipment is logged and does not abort the sweep
// - Provider status literals that do not map to a local transition are skipped
// - Failed job starts will stop any already running jobs
package jobs
