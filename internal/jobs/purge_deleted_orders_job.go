package jobs

import (
	"context"
	"log/slog"

	"laborders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge once a day at midnight.
const DefaultPurgeSchedule = "0 0 0 * * *"

// PurgeDeletedOrdersJob permanently removes orders that were soft deleted.
// Runs on a configurable cron schedule.
type PurgeDeletedOrdersJob struct {
	handler  commands.PurgeDeletedOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewPurgeDeletedOrdersJob creates a new purge job.
// An empty schedule falls back to DefaultPurgeSchedule.
func NewPurgeDeletedOrdersJob(
	handler commands.PurgeDeletedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *PurgeDeletedOrdersJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}

	return &PurgeDeletedOrdersJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "purge_deleted_orders_job"),
	}
}

// Start begins the purge job on its configured schedule.
func (j *PurgeDeletedOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewPurgeDeletedOrdersCommand()

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge deleted orders job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft deleted orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge deleted orders job started", "schedule", j.schedule)
	return nil
}

// Stop stops the purge job.
func (j *PurgeDeletedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge deleted orders job stopped")
}
