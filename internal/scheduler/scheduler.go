package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"FundTrend/internal/ingest"
	"FundTrend/internal/watchlist"
)

// Scheduler warms the series cache by refreshing every watch-list fund on a
// cron schedule, so interactive requests can fall back to fresh cached data
// when the live source is slow or down.
type Scheduler struct {
	Cron    *cron.Cron
	Service *ingest.Service
	Watch   *watchlist.Manager
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *ingest.Service, watch *watchlist.Manager) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Watch:   watch,
		Ctx:     ctx,
	}
}

// RegisterPrefetch registers the prefetch task.
func (s *Scheduler) RegisterPrefetch(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.prefetchTask); err != nil {
		return fmt.Errorf("register prefetch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunPrefetchNow executes the prefetch task immediately (for RUN_ON_START).
func (s *Scheduler) RunPrefetchNow() {
	s.prefetchTask()
}

func (s *Scheduler) prefetchTask() {
	codes := s.Watch.Codes()
	log.Printf("[INFO] prefetching %d watch-list funds", len(codes))
	for _, code := range codes {
		if s.Ctx.Err() != nil {
			log.Println("[WARN] prefetch aborted: context cancelled")
			return
		}
		res, err := s.Service.Load(s.Ctx, code)
		if err != nil {
			log.Printf("[ERROR] prefetch %s: %v", code, err)
			continue
		}
		log.Printf("[INFO] prefetched %s (%d points)", code, len(res.Series))
	}
}
