// Package jobs provides scheduled background tasks for the admin core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// There is a single job:
//
// DetailSweepJob periodically evicts unreferenced order detail entries from
// the query cache. The sweep is memory hygiene for closed detail views, not
// expiry: collection entries carry no TTL and stay fresh until an explicit
// invalidation, and a swept detail entry is simply refetched on the next
// acquire.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cache, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
