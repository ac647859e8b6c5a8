package watchlist

import (
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrEmptyImport means every entry of an imported configuration failed
// validation. Prior state is left untouched in that case.
var ErrEmptyImport = errors.New("import produced no valid entries")

var codePattern = regexp.MustCompile(`^\d{6}$`)

// DefaultEntries seeds the watch-list when no state file exists.
var DefaultEntries = map[string]string{
	"011892": "易方达先锋成长混合C",
	"021760": "中欧中证港股通创新药指数C",
	"020398": "中银港股通创新药混合C",
	"012805": "广发恒生科技ETF联接(QDII)C",
	"024420": "华夏创业板新能源ETF发起式联接C",
	"022654": "华安创业板50ETF联接I",
	"110022": "易方达消费行业",
}

// Manager holds the 6-digit-code to display-name mapping with concurrency
// safety, persisting changes to a JSON state file.
type Manager struct {
	mu       sync.Mutex
	entries  map[string]string
	filePath string
}

// NewManager creates a Manager, loading state from disk or seeding the
// default watch-list when the file doesn't exist.
func NewManager(filePath string) (*Manager, error) {
	entries, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		entries = make(map[string]string, len(DefaultEntries))
		for k, v := range DefaultEntries {
			entries[k] = v
		}
	}
	m := &Manager{entries: entries, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Entries returns a copy of the current mapping.
func (m *Manager) Entries() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Codes returns all codes in sorted order.
func (m *Manager) Codes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	codes := make([]string, 0, len(m.entries))
	for k := range m.entries {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// Name returns the display name for a code, "" when unknown.
func (m *Manager) Name(code string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[code]
}

// Has reports whether the code is on the watch-list.
func (m *Manager) Has(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[code]
	return ok
}

// DefaultCode picks the initially selected fund: preferred if present,
// otherwise the first code in sorted order, "" for an empty list.
func (m *Manager) DefaultCode(preferred string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[preferred]; ok {
		return preferred
	}
	codes := make([]string, 0, len(m.entries))
	for k := range m.entries {
		codes = append(codes, k)
	}
	if len(codes) == 0 {
		return ""
	}
	sort.Strings(codes)
	return codes[0]
}

// Learn records a display name fetched from the data source for a code the
// list doesn't know yet (or knows without a name).
func (m *Manager) Learn(code, name string) {
	name = strings.TrimSpace(name)
	if !ValidCode(code) || name == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[code]; ok && existing != "" {
		return
	}
	m.entries[code] = name
	if err := m.saveLocked(); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
}

// Import replaces the watch-list with a validated JSON mapping of 6-digit
// codes to display names. Entries failing validation are silently dropped;
// if nothing survives, ErrEmptyImport is returned and prior state is kept.
// Returns the number of imported entries.
func (m *Manager) Import(data []byte) (int, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}
	valid := make(map[string]string)
	for k, v := range raw {
		name, ok := v.(string)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if !ValidCode(k) || name == "" {
			continue
		}
		valid[k] = name
	}
	if len(valid) == 0 {
		return 0, ErrEmptyImport
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = valid
	if err := m.saveLocked(); err != nil {
		return len(valid), err
	}
	return len(valid), nil
}

// ValidCode reports whether code is a 6-digit fund code.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

func (m *Manager) save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	return SaveState(m.filePath, m.entries)
}
