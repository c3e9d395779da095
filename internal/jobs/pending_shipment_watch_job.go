package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingShipmentWatchJob periodically reports shipments that have waited
// too long for a route and carrier. It only reads and logs; assignment stays
// an explicit operator action.
type PendingShipmentWatchJob struct {
	handler    queries.GetPendingShipmentsQueryHandler
	alertAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingShipmentWatchJob creates a job that checks the pending backlog
// every minute and logs every shipment pending longer than alertAfter.
func NewPendingShipmentWatchJob(
	handler queries.GetPendingShipmentsQueryHandler,
	alertAfter time.Duration,
	logger *slog.Logger,
) *PendingShipmentWatchJob {
	return &PendingShipmentWatchJob{
		handler:    handler,
		alertAfter: alertAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "pending_shipment_watch_job"),
	}
}

// Start begins the watch job to run every minute.
func (j *PendingShipmentWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingShipmentsQuery()

		shipments, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending shipment watch failed", "error", err)
			return
		}

		now := time.Now().UTC()
		for _, shp := range shipments {
			age := now.Sub(shp.CreatedAt)
			if age < j.alertAfter {
				continue
			}

			j.logger.WarnContext(ctx, "Shipment pending beyond threshold",
				"shipment_id", shp.ID.String(),
				"tracking_number", shp.TrackingNumber,
				"pending_for", age.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending shipment watch job started (running every minute)")
	return nil
}

// Stop stops the watch job.
func (j *PendingShipmentWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending shipment watch job stopped")
}
