package ingest

import (
	"context"
	"errors"

	"FundTrend/internal/model"
)

// Result is one fund's fetched history.
type Result struct {
	Code   string
	Name   string // "" when the source carries no display name
	Series model.NetValueSeries
}

// Fetcher defines the interface for retrieving a fund's net-value history.
type Fetcher interface {
	FetchSeries(ctx context.Context, code string) (*Result, error)
	Name() string
}

// Fetch error taxonomy. Anything else coming out of FetchSeries is a
// transport-level network error.
var (
	// ErrParse means the raw payload did not contain the expected embedded
	// data blocks.
	ErrParse = errors.New("pingzhong payload missing data blocks")
	// ErrNotFound means the response was valid but held no observations.
	ErrNotFound = errors.New("fund data not found")
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series model.NetValueSeries
	Names  map[string]string
	Err    error
	// OnFetch, when set, runs before each fetch returns; tests use it to
	// simulate interactions arriving while a fetch is in flight.
	OnFetch func(code string)
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, code string) (*Result, error) {
	if m.OnFetch != nil {
		m.OnFetch(code)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &Result{Code: code, Name: m.Names[code], Series: m.Series}, nil
}
