package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"FundTrend/internal/model"
)

// SQLiteRecorder persists fetched series to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the prefetch scheduler can write while a request reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS series_cache (
			code       TEXT PRIMARY KEY,
			name       TEXT,
			points     TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS fetch_log (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			code      TEXT,
			source    TEXT,
			ok        INTEGER,
			note      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fetch_ts ON fetch_log(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_fetch_code ON fetch_log(code)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) SaveSeries(code, name string, series model.NetValueSeries) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	points, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}
	_, err = r.db.Exec(`INSERT INTO series_cache (code, name, points, fetched_at)
		VALUES (?,?,?,?)
		ON CONFLICT(code) DO UPDATE SET name=excluded.name, points=excluded.points, fetched_at=excluded.fetched_at`,
		code, name, string(points), time.Now().Unix(),
	)
	return err
}

func (r *SQLiteRecorder) LoadSeries(code string) (*CachedSeries, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.db.QueryRow(`SELECT name, points, fetched_at FROM series_cache WHERE code = ?`, code)
	var name, points string
	var fetchedAt int64
	if err := row.Scan(&name, &points, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load series: %w", err)
	}
	var series model.NetValueSeries
	if err := json.Unmarshal([]byte(points), &series); err != nil {
		return nil, fmt.Errorf("unmarshal cached series: %w", err)
	}
	return &CachedSeries{
		Code:         code,
		Name:         name,
		Observations: series,
		FetchedAt:    time.Unix(fetchedAt, 0),
	}, nil
}

func (r *SQLiteRecorder) RecordFetch(code, source string, ok bool, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	okInt := 0
	if ok {
		okInt = 1
	}
	_, err := r.db.Exec(`INSERT INTO fetch_log (timestamp, code, source, ok, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), code, source, okInt, note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
