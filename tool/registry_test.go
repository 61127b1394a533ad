package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubTool struct {
	name     string
	specs    []ParamSpec
	executed bool
	received map[string]any
	outputs  map[string]any
	err      error
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Params() []ParamSpec { return s.specs }

func (s *stubTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	s.executed = true
	s.received = params
	return s.outputs, s.err
}

type recordingObserver struct {
	observations []InvokeObservation
}

func (o *recordingObserver) ObserveInvoke(obs InvokeObservation) {
	o.observations = append(o.observations, obs)
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubTool{name: "create_document"}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := r.Register(&stubTool{name: "create_document"}); err == nil {
		t.Fatal("duplicate Register() error = nil, want error")
	}
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Execute(context.Background(), "does_not_exist", map[string]any{})
	if err == nil {
		t.Fatal("Execute() error = nil, want NOT_FOUND")
	}
	if !IsNotFound(err) {
		t.Fatalf("error code = %q, want NOT_FOUND", ErrorCode(err))
	}
	if !strings.Contains(err.Error(), "does_not_exist") {
		t.Fatalf("error %q does not name the unknown tool", err)
	}
}

func TestRegistryExecuteValidatesBeforeRunning(t *testing.T) {
	stub := &stubTool{
		name: "set_theme",
		specs: []ParamSpec{
			{Name: "path", Type: TypeString, Required: true},
			{Name: "themes", Type: TypeArray, Required: true},
		},
	}
	r := NewRegistry()
	if err := r.Register(stub); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := r.Execute(context.Background(), "set_theme", map[string]any{})
	if !IsValidation(err) {
		t.Fatalf("error code = %q, want INVALID_PARAMS", ErrorCode(err))
	}
	if stub.executed {
		t.Fatal("tool executed despite invalid params")
	}

	var toolErr *Error
	if !errors.As(err, &toolErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	diags, ok := toolErr.Details["diagnostics"].([]Diagnostic)
	if !ok {
		t.Fatalf("details.diagnostics type = %T, want []Diagnostic", toolErr.Details["diagnostics"])
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostic count = %d, want 2", len(diags))
	}
}

func TestRegistryExecutePassesParamsVerbatim(t *testing.T) {
	stub := &stubTool{
		name:    "generate_schedule",
		specs:   []ParamSpec{{Name: "phrase", Type: TypeString, Required: true}},
		outputs: map[string]any{"cron": "0 9 * * *"},
	}
	r := NewRegistry()
	if err := r.Register(stub); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	params := map[string]any{"phrase": "every day at 9am", "ignored": true}
	outcome, err := r.Execute(context.Background(), "generate_schedule", params)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stub.received["ignored"] != true {
		t.Fatal("extra param was not passed through verbatim")
	}
	if outcome.Outputs["cron"] != "0 9 * * *" {
		t.Fatalf("outputs = %v, want cron expression", outcome.Outputs)
	}
	if outcome.RequestID == "" {
		t.Fatal("outcome request ID is empty")
	}
}

func TestRegistryExecutePropagatesToolFailure(t *testing.T) {
	execErr := NewError(ErrorCodeIOFailure, "directory already exists")
	stub := &stubTool{name: "create_project", err: execErr}
	r := NewRegistry()
	if err := r.Register(stub); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := r.Execute(context.Background(), "create_project", map[string]any{})
	if !errors.Is(err, execErr) {
		t.Fatalf("Execute() error = %v, want the tool's own failure", err)
	}
}

func TestRegistryObserverSeesEveryDispatch(t *testing.T) {
	observer := &recordingObserver{}
	r := NewRegistry(WithObserver(observer))
	if err := r.Register(&stubTool{name: "ok_tool"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := r.Execute(context.Background(), "ok_tool", map[string]any{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := r.Execute(context.Background(), "missing_tool", map[string]any{}); err == nil {
		t.Fatal("Execute() error = nil, want NOT_FOUND")
	}

	if len(observer.observations) != 2 {
		t.Fatalf("observation count = %d, want 2", len(observer.observations))
	}
	if !observer.observations[0].Success {
		t.Fatal("first observation Success = false, want true")
	}
	if observer.observations[1].ErrorCode != ErrorCodeNotFound {
		t.Fatalf("second observation ErrorCode = %q, want NOT_FOUND", observer.observations[1].ErrorCode)
	}
}

func TestRegistryNamesPreserveRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(&stubTool{name: name}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	names := r.Names()
	want := []string{"zeta", "alpha", "mid"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
