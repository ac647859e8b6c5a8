package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const samplePingzhong = `var fS_name = "易方达消费行业";var fS_code = "110022";` +
	`var Data_netWorthTrend = [{"x":1755100800000,"y":1.0,"equityReturn":0,"unitMoney":""},` +
	`{"x":1755273600000,"y":0.9,"equityReturn":-10,"unitMoney":""},` +
	`{"x":1755187200000,"y":1.2,"equityReturn":20,"unitMoney":""}];` +
	`var Data_ACWorthTrend = [[1755100800000,2.0],[1755187200000,null],[1755273600000,2.1]];` +
	`var Data_grandTotal = [];`

func TestParsePingzhong(t *testing.T) {
	res, err := parsePingzhong("110022", []byte(samplePingzhong))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "易方达消费行业" {
		t.Errorf("expected fund name, got %q", res.Name)
	}
	if len(res.Series) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(res.Series))
	}
	// Source order is shuffled; output must be sorted by timestamp.
	for i := 1; i < len(res.Series); i++ {
		if res.Series[i].Timestamp <= res.Series[i-1].Timestamp {
			t.Fatal("series not sorted ascending")
		}
	}
	if res.Series[1].Unit != 1.2 {
		t.Errorf("expected middle unit value 1.2, got %.2f", res.Series[1].Unit)
	}
	// Accumulated values merge by timestamp; nulls stay absent.
	if res.Series[0].Acc == nil || *res.Series[0].Acc != 2.0 {
		t.Errorf("expected acc 2.0 on first observation, got %v", res.Series[0].Acc)
	}
	if res.Series[1].Acc != nil {
		t.Error("expected absent acc where the source reported null")
	}
	if res.Series[2].Acc == nil || *res.Series[2].Acc != 2.1 {
		t.Errorf("expected acc 2.1 on last observation, got %v", res.Series[2].Acc)
	}
}

func TestParsePingzhong_MissingBlocks(t *testing.T) {
	_, err := parsePingzhong("110022", []byte(`var fS_name = "x";var Data_grandTotal = [];`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestParsePingzhong_EmptyData(t *testing.T) {
	payload := `var Data_netWorthTrend = [];var Data_ACWorthTrend = [];`
	_, err := parsePingzhong("000000", []byte(payload))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEastmoneyFetcher_FetchSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pingzhongdata/110022.js" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(samplePingzhong))
	}))
	defer srv.Close()

	f := NewEastmoneyFetcher(srv.URL, "", 0)
	res, err := f.FetchSeries(context.Background(), "110022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Series) != 3 || res.Name == "" {
		t.Errorf("unexpected result: %d points, name %q", len(res.Series), res.Name)
	}

	if _, err := f.FetchSeries(context.Background(), "999999"); err == nil {
		t.Error("expected error for unknown code")
	}
}
