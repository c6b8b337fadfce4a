package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dailySummaryJob *DailySummaryJob
	logger          *zap.Logger
}

func NewJobManager(dailySummaryJob *DailySummaryJob, logger *zap.Logger) *JobManager {
	return &JobManager{
		dailySummaryJob: dailySummaryJob,
		logger:          logger.With(zap.String("component", "job_manager")),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dailySummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily summary job: %w", err)
	}
	jm.logger.Info("jobs started")
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.dailySummaryJob.Stop()
	jm.logger.Info("jobs stopped")
}
