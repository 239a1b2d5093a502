// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are built on github.com/robfig/cron/v3 with the standard five-field
// parser, so descriptors like "@hourly" and "@every 15m" are accepted.
//
// # Available Jobs
//
// SalesSummaryJob runs the sales summary query on a schedule and writes the
// totals per status to the log. It is a report only; the API always
// recomputes analytics on request.
//
// # Usage
//
//	job := jobs.NewSalesSummaryJob(summaryHandler, cfg.SummaryCron, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing report is logged and the schedule continues. A schedule that does
// not parse makes StartAll fail and stops any job that was already started.
package jobs
