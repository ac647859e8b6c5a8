package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"time"

	"FundTrend/internal/model"
)

// DefaultBaseURL is the Eastmoney host serving pingzhongdata scripts.
const DefaultBaseURL = "https://fund.eastmoney.com"

// The pingzhongdata response is a JS file with the history embedded as
// variable assignments; these pull out the two series and the fund name.
var (
	patNetTrend = regexp.MustCompile(`var\s+Data_netWorthTrend\s*=\s*(\[[\s\S]*?\]);`)
	patAccTrend = regexp.MustCompile(`var\s+Data_ACWorthTrend\s*=\s*(\[[\s\S]*?\]);`)
	patFundName = regexp.MustCompile(`var\s+fS_name\s*=\s*"([^"]*)"\s*;`)
)

// EastmoneyFetcher implements Fetcher against the pingzhongdata endpoint.
type EastmoneyFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewEastmoneyFetcher creates a fetcher with optional proxy support.
func NewEastmoneyFetcher(baseURL, proxyURL string, timeout time.Duration) *EastmoneyFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &EastmoneyFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *EastmoneyFetcher) Name() string { return "eastmoney" }

func (f *EastmoneyFetcher) FetchSeries(ctx context.Context, code string) (*Result, error) {
	endpoint := fmt.Sprintf("%s/pingzhongdata/%s.js", f.BaseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pingzhong: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch pingzhong: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pingzhong body: %w", err)
	}
	return parsePingzhong(code, body)
}

// netPoint is the shape of one Data_netWorthTrend entry.
type netPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// parsePingzhong extracts and merges the unit and accumulated series from
// the raw JS payload. Observations come out sorted ascending by timestamp
// with duplicates collapsed (last one wins, matching source order).
func parsePingzhong(code string, body []byte) (*Result, error) {
	mNet := patNetTrend.FindSubmatch(body)
	mAcc := patAccTrend.FindSubmatch(body)
	if mNet == nil || mAcc == nil {
		return nil, fmt.Errorf("%w: code %s", ErrParse, code)
	}

	var points []netPoint
	if err := json.Unmarshal(mNet[1], &points); err != nil {
		return nil, fmt.Errorf("%w: net trend: %v", ErrParse, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: code %s", ErrNotFound, code)
	}

	// Accumulated values arrive as [timestamp, value] pairs; the value may
	// be null for days without a reported figure.
	var accPairs [][]*float64
	if err := json.Unmarshal(mAcc[1], &accPairs); err != nil {
		return nil, fmt.Errorf("%w: acc trend: %v", ErrParse, err)
	}
	accByTS := make(map[int64]float64, len(accPairs))
	for _, pair := range accPairs {
		if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
			continue
		}
		accByTS[int64(*pair[0])] = *pair[1]
	}

	byTS := make(map[int64]model.Observation, len(points))
	for _, p := range points {
		obs := model.Observation{Timestamp: p.X, Unit: p.Y}
		if acc, ok := accByTS[p.X]; ok {
			a := acc
			obs.Acc = &a
		}
		byTS[p.X] = obs
	}
	series := make(model.NetValueSeries, 0, len(byTS))
	for _, obs := range byTS {
		series = append(series, obs)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Timestamp < series[j].Timestamp })

	res := &Result{Code: code, Series: series}
	if mName := patFundName.FindSubmatch(body); mName != nil {
		res.Name = string(mName[1])
	}
	return res, nil
}
