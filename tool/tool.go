package tool

import "context"

// Tool is a named, independently invocable unit of work. Concrete variants
// differ only in which parameters they require and what side effect or text
// they produce.
//
// Execute receives params verbatim after validation; it never observes input
// that violates the declared specs. Outputs reflect what happened (paths
// touched, content written) so a caller can assert without re-reading disk.
type Tool interface {
	Name() string
	Description() string
	Params() []ParamSpec
	Execute(ctx context.Context, params map[string]any) (map[string]any, error)
}

// Validate runs the generic validator for a tool and, when the tool also
// implements ParamValidator, appends its tool-specific diagnostics.
func Validate(t Tool, params map[string]any) Result {
	result := ValidateParams(t.Params(), params)
	if custom, ok := t.(ParamValidator); ok {
		result.Diagnostics = append(result.Diagnostics, custom.ValidateParams(params)...)
	}
	return result
}

// StringParam extracts a string parameter, returning "" when absent or not a
// string. Intended for use after validation has passed.
func StringParam(params map[string]any, name string) string {
	s, _ := params[name].(string)
	return s
}

// BoolParam extracts a boolean parameter with a default for absence.
func BoolParam(params map[string]any, name string, fallback bool) bool {
	b, ok := params[name].(bool)
	if !ok {
		return fallback
	}
	return b
}

// ObjectParam extracts an object parameter, returning nil when absent.
func ObjectParam(params map[string]any, name string) map[string]any {
	m, _ := params[name].(map[string]any)
	return m
}

// ListParam extracts an array parameter, returning nil when absent.
func ListParam(params map[string]any, name string) []any {
	l, _ := params[name].([]any)
	return l
}
