package recorder

import "FundTrend/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) SaveSeries(_, _ string, _ model.NetValueSeries) error { return nil }
func (n *NoopRecorder) LoadSeries(_ string) (*CachedSeries, error)           { return nil, nil }
func (n *NoopRecorder) RecordFetch(_, _ string, _ bool, _ string) error      { return nil }
func (n *NoopRecorder) Close() error                                         { return nil }
