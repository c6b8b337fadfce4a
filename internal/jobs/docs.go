// Package jobs provides scheduled background tasks for the order tracker.
//
// Jobs are cron driven through github.com/robfig/cron/v3 and are managed by
// JobManager:
//
//	job, err := jobs.NewDailySummaryJob(handler, "0 9 * * *", location, logger)
//	if err != nil {
//		return err
//	}
//	manager := jobs.NewJobManager(job, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Available Jobs
//
// DailySummaryJob lists every order once a day and sends the operator one
// message with the in-progress and payment-pending orders. The time zone is
// fixed when the job is built.
//
// # Error Handling
//
// A failed run is logged and is not retried; the next tick is the retry.
// Scheduling is in memory only, so ticks missed while the process is down
// are not replayed.
package jobs
