package recorder

import (
	"time"

	"FundTrend/internal/model"
)

// CachedSeries is one fund's last successfully fetched history. Only raw
// fetched data is cached; derived series and statistics are recomputed on
// every interaction and never persisted.
type CachedSeries struct {
	Code         string
	Name         string
	Observations model.NetValueSeries
	FetchedAt    time.Time
}

// Recorder persists fetched series and a fetch log. The cache serves as a
// fallback when the live source is unreachable.
type Recorder interface {
	SaveSeries(code, name string, series model.NetValueSeries) error
	// LoadSeries returns (nil, nil) when the code has never been cached.
	LoadSeries(code string) (*CachedSeries, error)
	RecordFetch(code, source string, ok bool, note string) error
	Close() error
}
