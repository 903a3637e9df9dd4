package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/seba-moreno/real-estate-tracker/internal/config"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// StartScheduler registers the periodic maintenance jobs and starts them.
// Callers stop the returned scheduler on shutdown.
func (a *App) StartScheduler() (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(config.RateLimitCleanupSchedule, func() {
		if e := a.RateLimitCleanupService.Cleanup(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled rate limit counter cleanup failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule rate limit cleanup: %w", err)
	}

	c.Start()
	utils.Logger.Infof("Scheduler started with %d job(s)", len(c.Entries()))
	return c, nil
}
