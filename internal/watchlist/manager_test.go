package watchlist

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "watchlist.json"))
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func TestNewManager_SeedsDefaults(t *testing.T) {
	m := newTestManager(t)
	if len(m.Entries()) != len(DefaultEntries) {
		t.Fatalf("expected %d default entries, got %d", len(DefaultEntries), len(m.Entries()))
	}
	if m.Name("110022") == "" {
		t.Error("expected default entry for 110022")
	}
	if got := m.DefaultCode("110022"); got != "110022" {
		t.Errorf("expected preferred default code, got %q", got)
	}
	if got := m.DefaultCode("999999"); got != m.Codes()[0] {
		t.Errorf("expected first sorted code for unknown preference, got %q", got)
	}
}

func TestImport_DropsInvalidEntries(t *testing.T) {
	m := newTestManager(t)
	data := []byte(`{
		"012345": "某基金A",
		"12345":  "键太短",
		"abcdef": "键非数字",
		"023456": "  ",
		"034567": 42,
		"045678": " 某基金B "
	}`)
	count, err := m.Import(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 surviving entries, got %d", count)
	}
	entries := m.Entries()
	if entries["012345"] != "某基金A" {
		t.Errorf("unexpected entries: %v", entries)
	}
	if entries["045678"] != "某基金B" {
		t.Error("expected trimmed display name")
	}
	if _, ok := entries["110022"]; ok {
		t.Error("import must replace the list wholesale")
	}
}

func TestImport_EmptyResultKeepsPriorState(t *testing.T) {
	m := newTestManager(t)
	before := m.Entries()

	_, err := m.Import([]byte(`{"12": "bad", "345678": ""}`))
	if !errors.Is(err, ErrEmptyImport) {
		t.Fatalf("expected ErrEmptyImport, got %v", err)
	}
	after := m.Entries()
	if len(after) != len(before) {
		t.Error("failed import must leave prior state untouched")
	}

	if _, err := m.Import([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if len(m.Entries()) != len(before) {
		t.Error("malformed import must leave prior state untouched")
	}
}

func TestLearn(t *testing.T) {
	m := newTestManager(t)

	m.Learn("123456", "新基金")
	if m.Name("123456") != "新基金" {
		t.Error("expected learned entry")
	}

	// Known names are not overwritten.
	m.Learn("110022", "别名")
	if m.Name("110022") != DefaultEntries["110022"] {
		t.Error("learn must not overwrite an existing name")
	}

	m.Learn("12x456", "坏代码")
	if m.Has("12x456") {
		t.Error("invalid codes must not be learned")
	}
	m.Learn("234567", "   ")
	if m.Has("234567") {
		t.Error("blank names must not be learned")
	}
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if _, err := m.Import([]byte(`{"012345": "某基金"}`)); err != nil {
		t.Fatalf("import: %v", err)
	}

	reloaded, err := NewManager(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name("012345") != "某基金" {
		t.Error("expected imported entry to survive a reload")
	}
	if len(reloaded.Entries()) != 1 {
		t.Errorf("expected 1 entry after reload, got %d", len(reloaded.Entries()))
	}
}
