// cmd/drishti/scheduler.go
package main

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// StartWarmCron starts the optional cache warmer. The job only calls
// Articles(), so cache semantics stay lazy-TTL: nothing is fetched
// unless the slot is actually stale. Returns nil when disabled.
func StartWarmCron(cfg *Config, cache *NewsCache) (*cron.Cron, error) {
	if cfg.WarmCron == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.WarmCron, func() {
		defer RecoverFromPanic("warm-cron")
		ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout*4)
		defer cancel()
		cache.Articles(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid WARM_CRON %q: %v", cfg.WarmCron, err)
	}

	c.Start()
	Logger().Info("Cache warmer scheduled: %s", cfg.WarmCron)
	return c, nil
}
