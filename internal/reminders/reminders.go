// Package reminders scans every user's latest cycle record on a cron schedule
// and reports cycles predicted to start within the lead window.
package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/vitalis/internal/logging"
	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/services"
	"go.uber.org/zap"
)

type CycleSource interface {
	LatestPerUser() ([]models.CycleRecord, error)
}

type Reminder struct {
	UserID        uint
	DaysRemaining int
	NextStart     time.Time
}

type Scheduler struct {
	cycles   CycleSource
	location *time.Location
	leadDays int
	logger   *zap.Logger
	now      func() time.Time
}

func NewScheduler(cycles CycleSource, location *time.Location, leadDays int, logger *zap.Logger) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		cycles:   cycles,
		location: location,
		leadDays: leadDays,
		logger:   logging.OrNop(logger),
		now:      time.Now,
	}
}

// Start registers the scan under spec (standard five-field cron syntax,
// evaluated in the scheduler location) and runs it until ctx is done.
func (scheduler *Scheduler) Start(ctx context.Context, spec string) error {
	runner := cron.New(cron.WithLocation(scheduler.location))
	if _, err := runner.AddFunc(spec, func() {
		if _, err := scheduler.RunOnce(ctx, scheduler.now()); err != nil {
			scheduler.logger.Error("cycle reminder scan failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", spec, err)
	}

	runner.Start()
	go func() {
		<-ctx.Done()
		<-runner.Stop().Done()
	}()
	return nil
}

// RunOnce evaluates every latest cycle record as of now. Records the estimator
// cannot use are skipped.
func (scheduler *Scheduler) RunOnce(ctx context.Context, now time.Time) ([]Reminder, error) {
	records, err := scheduler.cycles.LatestPerUser()
	if err != nil {
		return nil, fmt.Errorf("load cycle records: %w", err)
	}

	runID := uuid.NewString()
	reference := now.In(scheduler.location)
	reminders := make([]Reminder, 0)
	for index := range records {
		if err := ctx.Err(); err != nil {
			return reminders, err
		}

		estimate := services.EstimateCycle(&records[index], reference)
		nextStart, ok := estimate.PredictedStartDate()
		if !ok {
			scheduler.logger.Debug("cycle reminder skipped",
				zap.String("run_id", runID),
				zap.Uint("user_id", records[index].UserID),
				zap.String("status", string(estimate.Status)),
			)
			continue
		}
		if estimate.DaysRemaining() > scheduler.leadDays {
			continue
		}

		reminder := Reminder{
			UserID:        records[index].UserID,
			DaysRemaining: estimate.DaysRemaining(),
			NextStart:     nextStart,
		}
		reminders = append(reminders, reminder)
		scheduler.logger.Info("cycle starts soon",
			zap.String("run_id", runID),
			zap.Uint("user_id", reminder.UserID),
			zap.Int("days_remaining", reminder.DaysRemaining),
			zap.String("next_start", services.FormatDay(reminder.NextStart)),
		)
	}
	return reminders, nil
}
