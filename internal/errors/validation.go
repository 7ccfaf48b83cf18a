package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder collects problems per field and turns them into a single
// INVALID_ARGUMENT error.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder returns an empty builder.
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Fieldf records a problem with field.
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], fmt.Sprintf(format, args...))
	return vb
}

// RequiredField records a missing dependency or value.
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Fieldf(field, "is required")
}

// InvalidField records a value that is present but unusable.
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was recorded. Otherwise the message lists
// fields in the order they were first reported and the full map is kept
// under Meta["validation_errors"].
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, len(vb.order))
	for i, field := range vb.order {
		parts[i] = field + ": " + strings.Join(vb.fields[field], ", ")
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRange records field unless minValue <= value <= maxValue.
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateMaxLength records field when value is longer than maxLength bytes.
func ValidateMaxLength(field, value string, maxLength int, vb *ValidationBuilder) {
	if len(value) > maxLength {
		vb.Fieldf(field, "must be at most %d characters, got %d", maxLength, len(value))
	}
}

// ValidateEnum records field unless value is one of allowed.
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
