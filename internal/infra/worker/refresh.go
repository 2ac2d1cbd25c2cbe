// Package worker runs the periodic background jobs of the API process.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cahaya-digital/internal/observability/metrics"
	pkgconfig "cahaya-digital/internal/pkg/config"
	statsUC "cahaya-digital/internal/usecase/stats"
)

// RefreshJobName labels the totals refresh in the worker_cron_job_* metrics.
const RefreshJobName = "metrics_refresh"

// Refresher copies the dashboard counts into the articles_total, users_total
// and subscribers_total gauges.
type Refresher struct {
	Stats   *statsUC.Service
	Logger  *slog.Logger
	Timeout time.Duration
	now     func() time.Time
}

// NewRefresher creates a Refresher. A non-positive timeout means 30 seconds.
func NewRefresher(stats *statsUC.Service, logger *slog.Logger, timeout time.Duration) *Refresher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Refresher{Stats: stats, Logger: logger, Timeout: timeout, now: time.Now}
}

// Run performs one refresh. Failures leave the gauges at their previous values.
func (r *Refresher) Run(ctx context.Context) error {
	start := r.now()
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	d, err := r.Stats.Dashboard(ctx)
	CronJobDurationSeconds.WithLabelValues(RefreshJobName).Observe(time.Since(start).Seconds())
	if err != nil {
		CronJobRunsTotal.WithLabelValues(RefreshJobName, "failure").Inc()
		r.Logger.Warn("metrics refresh failed", slog.Any("error", err))
		return err
	}

	metrics.UpdateTotals(d.Articles, d.Users, d.Subscribers)
	CronJobRunsTotal.WithLabelValues(RefreshJobName, "success").Inc()
	CronJobLastSuccessTimestamp.WithLabelValues(RefreshJobName).Set(float64(r.now().Unix()))
	r.Logger.Debug("metrics refreshed",
		slog.Int64("articles", d.Articles),
		slog.Int64("users", d.Users),
		slog.Int64("subscribers", d.Subscribers))
	return nil
}

// Schedule registers the refresh on a new cron scheduler, runs it once
// immediately and starts the scheduler. Stop the returned cron on shutdown.
func Schedule(ctx context.Context, schedule string, r *Refresher) (*cron.Cron, error) {
	sched, err := pkgconfig.ParseCronSchedule(schedule)
	if err != nil {
		return nil, fmt.Errorf("metrics refresh schedule: %w", err)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(sched, cron.FuncJob(func() { _ = r.Run(ctx) }))

	_ = r.Run(ctx)
	c.Start()
	r.Logger.Info("metrics refresh scheduled", slog.String("schedule", schedule))
	return c, nil
}
