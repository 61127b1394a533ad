package tool

import (
	"context"
	"time"
)

// AuditRecord is one persisted dispatch outcome.
type AuditRecord struct {
	RequestID  string    `json:"request_id"`
	Tool       string    `json:"tool"`
	Params     string    `json:"params"` // JSON-encoded invocation params
	Success    bool      `json:"success"`
	ErrorCode  string    `json:"error_code,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// AuditStore persists dispatch records. Implementations serialize their own
// writes; the registry calls Append inline from Execute.
type AuditStore interface {
	Append(ctx context.Context, record AuditRecord) error
	Recent(ctx context.Context, limit int) ([]AuditRecord, error)
	Close() error
}
