// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// MissionResetter rolls the daily missions of every player whose last reset predates today.
type MissionResetter interface {
	ResetAll(ctx context.Context, force bool) (int, error)
}

type Scheduler struct {
	sched gocron.Scheduler
	log   *zap.Logger
}

// New registers the daily mission rollover at 00:00 UTC. Call Start to begin running jobs.
func New(missions MissionResetter, log *zap.Logger) (*Scheduler, error) {
	log = log.Named("scheduler")
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			ResetMissions(context.Background(), missions, log)
		}),
		gocron.WithName("daily-missions-reset"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("registering mission reset job: %w", err)
	}
	return &Scheduler{sched: sched, log: log}, nil
}

// ResetMissions is the body of the daily job.
func ResetMissions(ctx context.Context, missions MissionResetter, log *zap.Logger) {
	start := time.Now()
	rolled, err := missions.ResetAll(ctx, false)
	if err != nil {
		log.Error("daily mission reset failed", zap.Int("rolled", rolled), zap.Error(err))
		return
	}
	log.Info("daily missions reset", zap.Int("rolled", rolled), zap.Duration("took", time.Since(start)))
}

func (s *Scheduler) Start() {
	s.sched.Start()
	s.log.Info("scheduler started")
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}
