package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ShipmentTrackingJob polls the carrier aggregator for every open API shipment
// and advances the local status machine to match. Manual shipments are never
// polled; their status changes only through operator action.
type ShipmentTrackingJob struct {
	shipments  ports.ShipmentRepository
	aggregator ports.AggregatorClient
	handler    commands.AdvanceShipmentStatusCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewShipmentTrackingJob creates a new job for polling shipment tracking.
// Runs every minute; provider statuses that do not map to a local transition
// are skipped without error.
func NewShipmentTrackingJob(
	shipments ports.ShipmentRepository,
	aggregator ports.AggregatorClient,
	handler commands.AdvanceShipmentStatusCommandHandler,
	logger *slog.Logger,
) *ShipmentTrackingJob {
	return &ShipmentTrackingJob{
		shipments:  shipments,
		aggregator: aggregator,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "shipment_tracking_job"),
	}
}

// Start begins the shipment tracking job to run every minute.
func (j *ShipmentTrackingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.pollOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shipment tracking poll failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment tracking job started (running every minute)")
	return nil
}

// Stop stops the shipment tracking job.
func (j *ShipmentTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment tracking job stopped")
}

// pollOnce tracks every open API shipment. A failure on one shipment is
// logged and does not abort the rest of the sweep.
func (j *ShipmentTrackingJob) pollOnce(ctx context.Context) error {
	open, err := j.shipments.GetAllOpenAPIShipments(ctx)
	if err != nil {
		return err
	}

	for _, s := range open {
		if err := j.trackShipment(ctx, s); err != nil {
			j.logger.ErrorContext(ctx, "Shipment tracking failed",
				"shipmentID", s.ID().String(), "trackingRef", s.TrackingRef(), "error", err)
		}
	}

	return nil
}

func (j *ShipmentTrackingJob) trackShipment(ctx context.Context, s *shipment.Shipment) error {
	result, err := j.aggregator.TrackShipment(ctx, s.ProviderCode(), s.TrackingRef())
	if err != nil {
		return err
	}

	next, ok := mapProviderStatus(result.Status)
	if !ok || next == s.Status() {
		return nil
	}

	for _, step := range statusSteps(s.Status(), next) {
		cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), step)
		if err != nil {
			return err
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	j.logger.InfoContext(ctx, "Shipment status advanced",
		"shipmentID", s.ID().String(), "from", s.Status().String(), "to", next.String())
	return nil
}

// statusSteps expands a provider jump into the transitions the local machine
// accepts. A carrier can report DELIVERED before a pickup scan was ever seen.
func statusSteps(current, next shipment.Status) []shipment.Status {
	if current == shipment.Created && next == shipment.Delivered {
		return []shipment.Status{shipment.InTransit, shipment.Delivered}
	}
	return []shipment.Status{next}
}

// mapProviderStatus translates aggregator status literals into the local
// status machine. Unrecognized literals are ignored; the next poll retries.
func mapProviderStatus(providerStatus string) (shipment.Status, bool) {
	switch providerStatus {
	case "PICKED_UP", "SHIPPED", "IN_TRANSIT", "OUT_FOR_DELIVERY":
		return shipment.InTransit, true
	case "DELIVERED":
		return shipment.Delivered, true
	case "RTO", "CANCELLED", "LOST", "FAILED":
		return shipment.Failed, true
	default:
		return shipment.UnknownStatus, false
	}
}
