// AngelaMos | 2026
// janitor.go

package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/greengarden-id/backend/internal/config"
)

// UserPurger removes soft-deleted accounts past the retention window.
type UserPurger interface {
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CartPurger removes carts nobody has touched within the retention
// window.
type CartPurger interface {
	PurgeStaleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor runs retention sweeps on a cron schedule. Each run gets a
// fresh background context so sweeps outlive the request lifecycle but
// still stop on Stop.
type Janitor struct {
	cfg    config.JanitorConfig
	users  UserPurger
	carts  CartPurger
	logger *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func New(
	cfg config.JanitorConfig,
	users UserPurger,
	carts CartPurger,
	logger *slog.Logger,
) *Janitor {
	return &Janitor{
		cfg:    cfg,
		users:  users,
		carts:  carts,
		logger: logger,
	}
}

func (j *Janitor) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(j.cfg.Schedule, j.sweep); err != nil {
		return err
	}

	c.Start()
	j.cron = c
	j.running = true

	j.logger.Info("janitor started", "schedule", j.cfg.Schedule)
	return nil
}

// Stop halts the schedule and waits for any in-flight sweep to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	ctx := j.cron.Stop()
	<-ctx.Done()

	j.running = false
	j.logger.Info("janitor stopped")
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	j.RunOnce(ctx)
}

// RunOnce executes a single sweep. Exposed so operators can trigger it
// out of schedule.
func (j *Janitor) RunOnce(ctx context.Context) {
	now := time.Now().UTC()

	users, err := j.users.PurgeDeletedBefore(
		ctx,
		now.Add(-j.cfg.UserRetention),
	)
	if err != nil {
		j.logger.Error("user purge failed", "error", err)
	} else if users > 0 {
		j.logger.Info("purged soft-deleted users", "count", users)
	}

	carts, err := j.carts.PurgeStaleBefore(
		ctx,
		now.Add(-j.cfg.CartRetention),
	)
	if err != nil {
		j.logger.Error("cart purge failed", "error", err)
	} else if carts > 0 {
		j.logger.Info("purged stale carts", "count", carts)
	}
}
