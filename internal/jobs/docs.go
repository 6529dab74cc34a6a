// Package jobs provides scheduled background tasks for the courier desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// They are started only by the `watch` command; the core never schedules
// work on its own.
//
// # Available Jobs
//
// 1. SnapshotBackupJob - writes a timestamped copy of the whole database
// 2. KPIReportJob - logs the dashboard KPIs
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewSnapshotBackupJob(backup, clock, cfg.BackupSchedule, logger),
//		jobs.NewKPIReportJob(dashboardHandler, cfg.ReportSchedule, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@hourly" and "@every 15m".
//
// # Error Handling
//
// - A failed run is logged and the next run happens on schedule
// - An invalid schedule fails StartAll, which stops the jobs already started
package jobs
