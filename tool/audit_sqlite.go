package tool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS invocations (
	request_id TEXT PRIMARY KEY,
	tool TEXT NOT NULL,
	params TEXT NOT NULL,
	success INTEGER NOT NULL,
	error_code TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL,
	at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS invocations_at ON invocations(at);`

const (
	defaultAuditDir = ".quill"
	defaultAuditDB  = "audit.db"
)

// SQLiteAuditStore persists invocation records in a local SQLite database.
type SQLiteAuditStore struct {
	db *sql.DB
}

// DefaultAuditPath returns the default audit database path (~/.quill/audit.db).
func DefaultAuditPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tool: resolve user home: %w", err)
	}
	return filepath.Join(home, defaultAuditDir, defaultAuditDB), nil
}

// NewSQLiteAuditStore opens (or creates) an audit store at the given path.
func NewSQLiteAuditStore(path string) (*SQLiteAuditStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("tool: audit store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("tool: audit store create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tool: audit store open: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tool: audit store set WAL mode: %w", err)
	}
	if _, err := db.Exec(auditSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tool: audit store create schema: %w", err)
	}
	return &SQLiteAuditStore{db: db}, nil
}

// Append inserts one record.
func (s *SQLiteAuditStore) Append(ctx context.Context, record AuditRecord) error {
	if s == nil || s.db == nil {
		return errors.New("tool: audit store is nil")
	}
	success := 0
	if record.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO invocations (request_id, tool, params, success, error_code, duration_ms, at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.RequestID,
		record.Tool,
		record.Params,
		success,
		record.ErrorCode,
		record.DurationMS,
		record.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("tool: audit append: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (s *SQLiteAuditStore) Recent(ctx context.Context, limit int) ([]AuditRecord, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("tool: audit store is nil")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT request_id, tool, params, success, error_code, duration_ms, at
FROM invocations
ORDER BY at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("tool: audit query: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var (
			record  AuditRecord
			success int
			at      string
		)
		if err := rows.Scan(&record.RequestID, &record.Tool, &record.Params, &success, &record.ErrorCode, &record.DurationMS, &at); err != nil {
			return nil, fmt.Errorf("tool: audit scan: %w", err)
		}
		record.Success = success != 0
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("tool: audit parse timestamp %q: %w", at, err)
		}
		record.At = parsed
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteAuditStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
