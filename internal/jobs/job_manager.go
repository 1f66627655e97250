package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentTrackingJob *ShipmentTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes repositories and command handlers as dependencies to wire up job execution.
func NewJobManager(
	shipments ports.ShipmentRepository,
	aggregator ports.AggregatorClient,
	advanceHandler commands.AdvanceShipmentStatusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentTrackingJob: NewShipmentTrackingJob(shipments, aggregator, advanceHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentTrackingJob.Stop()
}
