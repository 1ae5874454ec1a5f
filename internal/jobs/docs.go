// Package jobs provides scheduled background tasks for the distribution system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops everything as one unit:
//
//	jobManager := jobs.NewJobManager(lowStockHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// LowStockAlertJob runs hourly; stock moves on the scale of days, so a tighter
// schedule would only repeat the same alerts.
package jobs
