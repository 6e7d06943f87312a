package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecomputeJobName is the name of the cost reconciliation job
const RecomputeJobName = "cost_recompute"

// EventRecomputeService defines the interface for re-deriving event costs and
// statuses. The job depends on this interface rather than the service package.
type EventRecomputeService interface {
	// ListEventIDs returns the events the job should walk.
	ListEventIDs(ctx context.Context) ([]uuid.UUID, error)

	// Recompute re-derives one event's shift aggregates, totals and status.
	Recompute(ctx context.Context, eventID uuid.UUID) error
}

// RecomputeJob walks all active events and repairs any drift between stored
// aggregates and the values derived from line items.
type RecomputeJob struct {
	eventService EventRecomputeService
	logger       *zap.Logger
	timeout      time.Duration
}

// NewRecomputeJob creates a new cost reconciliation job.
// The timeout bounds one full pass over the events.
func NewRecomputeJob(eventService EventRecomputeService, logger *zap.Logger, timeout time.Duration) *RecomputeJob {
	return &RecomputeJob{
		eventService: eventService,
		logger:       logger,
		timeout:      timeout,
	}
}

// Run executes one reconciliation pass.
// This is called by the scheduler according to the cron expression.
func (j *RecomputeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("starting cost reconciliation job")

	ids, err := j.eventService.ListEventIDs(ctx)
	if err != nil {
		j.logger.Error("failed to list events for reconciliation", zap.Error(err))
		return
	}

	var failed int
	for _, id := range ids {
		if ctx.Err() != nil {
			j.logger.Warn("cost reconciliation timed out",
				zap.Int("events_total", len(ids)),
				zap.Duration("duration", time.Since(start)))
			return
		}
		if err := j.eventService.Recompute(ctx, id); err != nil {
			failed++
			j.logger.Error("failed to recompute event",
				zap.Error(err),
				zap.String("event_id", id.String()))
		}
	}

	j.logger.Info("cost reconciliation completed",
		zap.Int("events_total", len(ids)),
		zap.Int("events_failed", failed),
		zap.Duration("duration", time.Since(start)))
}
