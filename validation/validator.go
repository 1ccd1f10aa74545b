package validation

import (
	"maps"
	"slices"
	"strings"
)

// Error lists the violations found per field. Local checks and the Late
// API's own 400 responses share this field-to-messages shape.
type Error struct {
	Fields map[string][]string
}

// Error renders "validation failed: a: m1, m2; b: m3" with fields sorted.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range slices.Sorted(maps.Keys(e.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name + ": " + strings.Join(e.Fields[name], ", "))
	}
	return b.String()
}

// Validator accumulates violations across several checks.
type Validator struct {
	fields map[string][]string
}

func New() *Validator {
	return &Validator{fields: map[string][]string{}}
}

// Add records message against field, after any earlier messages.
func (v *Validator) Add(field, message string) *Validator {
	v.fields[field] = append(v.fields[field], message)
	return v
}

// Required flags a value that is empty or only whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
	return v
}

// Check flags field with message unless ok holds.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.Add(field, message)
	}
	return v
}

func (v *Validator) HasErrors() bool { return len(v.fields) > 0 }

// Err returns a *Error snapshot, or nil when nothing was flagged.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &Error{Fields: maps.Clone(v.fields)}
}

// Required is the one-field form of Validator.Required.
func Required(field, value string) error {
	return New().Required(field, value).Err()
}
