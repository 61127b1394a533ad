package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of one successful registry dispatch.
type Outcome struct {
	RequestID  string         `json:"request_id"`
	Tool       string         `json:"tool"`
	Outputs    map[string]any `json:"outputs,omitempty"`
	DurationMS int64          `json:"duration_ms"`
}

// Registry is the uniform dispatch surface over the tool catalog. It is built
// once by explicit registration during initialization and treated as read-only
// afterward; no invocation mutates it. Separate registries can coexist, so
// tests never share ambient global state.
type Registry struct {
	tools    map[string]Tool
	order    []string
	observer Observer
	audit    AuditStore
	logger   *slog.Logger
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithObserver wires dispatch observations to the given observer.
func WithObserver(observer Observer) RegistryOption {
	return func(r *Registry) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// WithAuditStore persists one record per dispatch to the given store.
func WithAuditStore(store AuditStore) RegistryOption {
	return func(r *Registry) {
		r.audit = store
	}
}

// WithLogger sets the logger used for non-fatal bookkeeping failures.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		tools:    make(map[string]Tool),
		observer: noopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool under its name. Registering a duplicate name fails so
// a later registration can never silently shadow an earlier one.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("tool: cannot register a tool with an empty name")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool: %q is already registered", name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Execute looks up a tool, validates params against its contract, and runs it.
//
// An unknown name fails with NOT_FOUND before any side effect. Invalid params
// fail with INVALID_PARAMS carrying the complete ordered diagnostic list; the
// tool's execute never observes them. Tool failures propagate unmodified.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (Outcome, error) {
	requestID := uuid.NewString()

	t, ok := r.tools[name]
	if !ok {
		err := NewError(ErrorCodeNotFound, "unknown tool %q", name)
		r.record(ctx, requestID, name, params, 0, err)
		return Outcome{}, err
	}

	if result := Validate(t, params); !result.Valid() {
		err := NewError(ErrorCodeInvalidParams, "invalid parameters for %q: %s", name, result.Summary()).
			WithDetails(map[string]any{"diagnostics": result.Diagnostics})
		r.record(ctx, requestID, name, params, 0, err)
		return Outcome{}, err
	}

	start := time.Now()
	outputs, err := t.Execute(ctx, params)
	elapsed := time.Since(start).Milliseconds()
	r.record(ctx, requestID, name, params, elapsed, err)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		RequestID:  requestID,
		Tool:       name,
		Outputs:    outputs,
		DurationMS: elapsed,
	}, nil
}

func (r *Registry) record(ctx context.Context, requestID, name string, params map[string]any, durationMS int64, execErr error) {
	errorCode := ""
	if execErr != nil {
		errorCode = ErrorCode(execErr)
		if errorCode == "" {
			errorCode = ErrorCodeExecutionFailed
		}
	}

	r.observer.ObserveInvoke(InvokeObservation{
		RequestID:  requestID,
		ToolName:   name,
		DurationMS: durationMS,
		Success:    execErr == nil,
		ErrorCode:  errorCode,
	})

	if r.audit == nil {
		return
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		paramsJSON = []byte("{}")
	}
	record := AuditRecord{
		RequestID:  requestID,
		Tool:       name,
		Params:     string(paramsJSON),
		Success:    execErr == nil,
		ErrorCode:  errorCode,
		DurationMS: durationMS,
		At:         time.Now().UTC(),
	}
	if err := r.audit.Append(ctx, record); err != nil {
		// Auditing is never allowed to fail a dispatch.
		r.logger.Warn("audit append failed", "tool", name, "request_id", requestID, "error", err)
	}
}
