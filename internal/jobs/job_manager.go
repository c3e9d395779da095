package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/queries"
)

// JobManager coordinates the scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingShipmentWatchJob *PendingShipmentWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getPendingShipmentsHandler queries.GetPendingShipmentsQueryHandler,
	pendingAlertAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingShipmentWatchJob: NewPendingShipmentWatchJob(
			getPendingShipmentsHandler,
			pendingAlertAfter,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingShipmentWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending shipment watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingShipmentWatchJob.Stop()
}
