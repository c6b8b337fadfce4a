package jobs

import (
	"context"
	"fmt"
	"time"

	"ordertracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDailySummarySchedule fires every day at 09:00.
const DefaultDailySummarySchedule = "0 9 * * *"

const dailySummaryTimeout = 2 * time.Minute

// DailySummaryHandler runs one sweep. commands.SendDailySummaryCommandHandler
// satisfies it.
type DailySummaryHandler interface {
	Handle(ctx context.Context, cmd commands.SendDailySummaryCommand) (commands.DailySummaryResult, error)
}

// DailySummaryJob sends the operator the list of active orders once per
// scheduled tick. A failed run is logged and waits for the next tick.
type DailySummaryJob struct {
	handler  DailySummaryHandler
	spec     string
	schedule cron.Schedule
	location *time.Location
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDailySummaryJob parses spec as a standard five-field cron expression
// evaluated in location (nil means UTC).
func NewDailySummaryJob(
	handler DailySummaryHandler,
	spec string,
	location *time.Location,
	logger *zap.Logger,
) (*DailySummaryJob, error) {
	if spec == "" {
		spec = DefaultDailySummarySchedule
	}
	if location == nil {
		location = time.UTC
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse daily summary schedule %q: %w", spec, err)
	}

	return &DailySummaryJob{
		handler:  handler,
		spec:     spec,
		schedule: schedule,
		location: location,
		cron:     cron.New(cron.WithLocation(location)),
		logger:   logger.With(zap.String("component", "daily_summary_job")),
	}, nil
}

func (j *DailySummaryJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), dailySummaryTimeout)
		defer cancel()
		_ = j.RunOnce(ctx)
	}))

	j.cron.Start()
	j.logger.Info("daily summary job started",
		zap.String("schedule", j.spec),
		zap.String("time_zone", j.location.String()),
		zap.Time("next_run", j.NextRun(time.Now())),
	)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to return.
func (j *DailySummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("daily summary job stopped")
}

// RunOnce executes a single sweep.
func (j *DailySummaryJob) RunOnce(ctx context.Context) error {
	result, err := j.handler.Handle(ctx, commands.NewSendDailySummaryCommand())
	if err != nil {
		j.logger.Error("daily summary failed", zap.Error(err))
		return err
	}

	j.logger.Info("daily summary sent",
		zap.Int("in_progress", result.InProgress),
		zap.Int("payment_pending", result.PaymentPending),
		zap.String("delivery_id", result.DeliveryID),
	)
	return nil
}

// NextRun returns the first scheduled instant after from.
func (j *DailySummaryJob) NextRun(from time.Time) time.Time {
	return j.schedule.Next(from.In(j.location))
}
