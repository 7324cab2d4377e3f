// Package jobs provides scheduled background tasks for the delivery
// request lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RequestExpiryJob - Runs every minute to cancel pending requests older
// than the configured TTL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleHandler, requestTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job skips requests that were accepted between the sweep query
// and the cancellation write; losing that race is expected, not an error.
package jobs
