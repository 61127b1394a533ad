package tool

import (
	"fmt"
	"math"
	"slices"
)

// Parameter type literals used by tool contracts.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeAny     = "any"
)

var validParamTypes = map[string]struct{}{
	TypeString:  {},
	TypeInteger: {},
	TypeFloat:   {},
	TypeBoolean: {},
	TypeArray:   {},
	TypeObject:  {},
	TypeAny:     {},
}

// ParamSpec is the declarative field descriptor consulted by the generic
// validator. Specs are declared in order; diagnostics follow that order.
type ParamSpec struct {
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	Required    bool                 `json:"required,omitempty"`
	Description string               `json:"description,omitempty"`
	Items       *ParamSpec           `json:"items,omitempty"`
	Properties  map[string]ParamSpec `json:"properties,omitempty"`
}

// ValidateParams checks params against the ordered specs and returns every
// violated constraint. Unknown extra keys are allowed; tools receive params
// verbatim and ignore what they did not declare.
func ValidateParams(specs []ParamSpec, params map[string]any) Result {
	result := Result{Diagnostics: make([]Diagnostic, 0)}
	for _, spec := range specs {
		value, present := params[spec.Name]
		if !present || value == nil {
			if spec.Required {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Field:    spec.Name,
					Code:     "REQUIRED_PARAM",
					Severity: SeverityError,
					Message:  fmt.Sprintf("missing required parameter %q", spec.Name),
				})
			}
			continue
		}
		validateValue(spec.Name, spec, value, &result.Diagnostics)
	}
	return result
}

func validateValue(path string, spec ParamSpec, value any, diags *[]Diagnostic) {
	if _, ok := validParamTypes[spec.Type]; !ok {
		*diags = append(*diags, Diagnostic{
			Field:    path,
			Code:     "INVALID_SPEC_TYPE",
			Severity: SeverityError,
			Message:  fmt.Sprintf("parameter %q declares unsupported type %q", path, spec.Type),
		})
		return
	}
	if spec.Type == TypeAny {
		return
	}
	if !kindMatches(spec.Type, value) {
		*diags = append(*diags, Diagnostic{
			Field:    path,
			Code:     "TYPE_MISMATCH",
			Severity: SeverityError,
			Message:  fmt.Sprintf("parameter %q must be a %s, got %T", path, spec.Type, value),
		})
		return
	}

	switch spec.Type {
	case TypeArray:
		if spec.Items == nil {
			return
		}
		items, _ := value.([]any)
		for i, item := range items {
			itemSpec := *spec.Items
			validateValue(fmt.Sprintf("%s[%d]", path, i), itemSpec, item, diags)
		}
	case TypeObject:
		fields, _ := value.(map[string]any)
		for _, name := range sortedSpecNames(spec.Properties) {
			propSpec := spec.Properties[name]
			propPath := path + "." + name
			propValue, present := fields[name]
			if !present || propValue == nil {
				if propSpec.Required {
					*diags = append(*diags, Diagnostic{
						Field:    propPath,
						Code:     "REQUIRED_PARAM",
						Severity: SeverityError,
						Message:  fmt.Sprintf("missing required parameter %q", propPath),
					})
				}
				continue
			}
			propSpec.Name = name
			validateValue(propPath, propSpec, propValue, diags)
		}
	}
}

// kindMatches reports whether a decoded JSON value satisfies a type literal.
// JSON numbers arrive as float64, so integers accept integral floats.
func kindMatches(typeName string, value any) bool {
	switch typeName {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeInteger:
		switch n := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return n == math.Trunc(n)
		default:
			return false
		}
	case TypeFloat:
		switch value.(type) {
		case float32, float64, int, int32, int64:
			return true
		default:
			return false
		}
	case TypeArray:
		_, ok := value.([]any)
		return ok
	case TypeObject:
		_, ok := value.(map[string]any)
		return ok
	case TypeAny:
		return true
	default:
		return false
	}
}

func sortedSpecNames(specs map[string]ParamSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
