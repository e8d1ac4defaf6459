// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager,
// which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(dueHandler, advanceHandler, orderMetrics, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// DeliveryCompletionJob runs every minute: it queries for orders out for
// delivery whose estimated delivery time has passed and advances each to the
// terminal status through the regular advancement command, one transaction
// per order.
package jobs
