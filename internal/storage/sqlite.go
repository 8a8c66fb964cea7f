package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dshills/drafter/internal/plan"
)

// ErrPlanNotFound indicates no archived plan has the requested ID.
var ErrPlanNotFound = errors.New("plan not found")

// Entry is one archived plan's metadata.
type Entry struct {
	ID         string
	CreatedAt  time.Time
	Seed       uint64
	Keys       int
	DurationMs uint64
}

// Archive stores plans in SQLite with WAL mode enabled.
type Archive struct {
	db   *sql.DB
	path string
}

// Open creates or opens the archive database at dbPath.
func Open(dbPath string) (*Archive, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("archive db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	a := &Archive{db: db, path: dbPath}
	if err := a.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return a, nil
}

func (a *Archive) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		created_at  INTEGER NOT NULL,
		seed        INTEGER NOT NULL,
		keys        INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		payload     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at DESC);
	`
	_, err := a.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Save archives a plan. Saving the same plan ID again replaces the
// earlier row.
func (a *Archive) Save(p *plan.Plan) error {
	payload, err := plan.Encode(p)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	_, err = a.db.Exec(`
		INSERT OR REPLACE INTO plans (id, created_at, seed, keys, duration_ms, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Header.ID, time.Now().Unix(), int64(p.Header.Config.Seed), p.Keys(), int64(p.Duration()), string(payload))
	if err != nil {
		return fmt.Errorf("save plan %s: %w", p.Header.ID, err)
	}
	return nil
}

// Load returns the archived plan with the given ID.
func (a *Archive) Load(id string) (*plan.Plan, error) {
	var payload string
	err := a.db.QueryRow(`SELECT payload FROM plans WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", id, ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", id, err)
	}
	return plan.Decode([]byte(payload))
}

// List returns archive entries, newest first.
func (a *Archive) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.db.Query(`
		SELECT id, created_at, seed, keys, duration_ms
		FROM plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created, seed, duration int64
		if err := rows.Scan(&e.ID, &created, &seed, &e.Keys, &duration); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		e.Seed = uint64(seed)
		e.DurationMs = uint64(duration)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes an archived plan.
func (a *Archive) Delete(id string) error {
	res, err := a.db.Exec(`DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrPlanNotFound)
	}
	return nil
}
