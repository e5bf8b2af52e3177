// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. AssignmentSweepJob - Periodically pairs tailors with orders whose items
// are still waiting for a primary/backup pair
// 2. RiskRefreshJob - Periodically recomputes deadline risk scores for active
// hub-manufactured orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignTailorsHandler, uowFactory, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweep job ignores expected business errors (pool too small, pair
// already assigned, capacity lost to a concurrent claim) and retries on the
// next tick
// - The risk refresh job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
