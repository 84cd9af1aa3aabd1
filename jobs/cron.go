package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DashboardRefresher recomputes the cached dashboard snapshot.
type DashboardRefresher interface {
	RefreshDashboardCache(ctx context.Context) error
}

var dashboardRefresher DashboardRefresher

// SetDashboardRefresher sets the implementation used by the scheduled jobs.
func SetDashboardRefresher(refresher DashboardRefresher) {
	dashboardRefresher = refresher
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Nightly dashboard refresh so the first morning request is warm.
	_, err := c.AddFunc("0 0 * * *", func() {
		if dashboardRefresher == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := dashboardRefresher.RefreshDashboardCache(ctx); err != nil {
			log.Printf("Error refreshing dashboard cache: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
