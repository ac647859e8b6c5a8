package ingest

import (
	"context"
	"fmt"
	"log"

	"FundTrend/internal/recorder"
	"FundTrend/internal/watchlist"
)

// Service fetches fund histories, caching successful results and falling
// back to the cache when the live source fails.
type Service struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
	Watch    *watchlist.Manager
}

// NewService creates a Service.
func NewService(fetcher Fetcher, rec recorder.Recorder, watch *watchlist.Manager) *Service {
	return &Service{Fetcher: fetcher, Recorder: rec, Watch: watch}
}

// Load returns the fund's history: live when possible, cached otherwise.
// Only when both the live fetch and the cache come up empty does the fetch
// error surface to the caller.
func (s *Service) Load(ctx context.Context, code string) (*Result, error) {
	res, err := s.Fetcher.FetchSeries(ctx, code)
	if err == nil {
		if rerr := s.Recorder.SaveSeries(code, res.Name, res.Series); rerr != nil {
			log.Printf("[WARN] cache series %s: %v", code, rerr)
		}
		if rerr := s.Recorder.RecordFetch(code, s.Fetcher.Name(), true, fmt.Sprintf("%d points", len(res.Series))); rerr != nil {
			log.Printf("[WARN] record fetch %s: %v", code, rerr)
		}
		if s.Watch != nil {
			s.Watch.Learn(code, res.Name)
		}
		return res, nil
	}

	if rerr := s.Recorder.RecordFetch(code, s.Fetcher.Name(), false, err.Error()); rerr != nil {
		log.Printf("[WARN] record fetch %s: %v", code, rerr)
	}

	cached, cerr := s.Recorder.LoadSeries(code)
	if cerr != nil {
		log.Printf("[WARN] load cached series %s: %v", code, cerr)
	}
	if cached != nil {
		log.Printf("[WARN] live fetch for %s failed (%v), serving cache from %s",
			code, err, cached.FetchedAt.Format("2006-01-02 15:04"))
		return &Result{Code: code, Name: cached.Name, Series: cached.Observations}, nil
	}
	return nil, err
}
