// Package apperror provides the error values handlers turn into pages.
// Messages are safe to show to users; internal causes (DB errors, stack
// traces) never travel through this package.
package apperror

import "sort"

// AppError is the canonical error envelope for JSON responses (health, 5xx).
type AppError struct {
	Detail string `json:"detail"`
}

func New(msg string) *AppError {
	return &AppError{Detail: msg}
}

func (e *AppError) Error() string { return e.Detail }

// ValidationError carries a form-level message plus per-field messages.
// Fields is keyed by the form field name (e.g. "correo", "nivel").
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Verifica los errores en el formulario.", Fields: fields}
}

// Campo builds a ValidationError with a single offending field.
func Campo(campo, msg string) *ValidationError {
	return NewValidation(map[string]string{campo: msg})
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Detail
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Detail + " (" + keys[0] + ": " + e.Fields[keys[0]] + ")"
}

// Merge adds the fields of other that are not already set.
func (e *ValidationError) Merge(other *ValidationError) *ValidationError {
	if other == nil {
		return e
	}
	if e == nil {
		return other
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string, len(other.Fields))
	}
	for k, v := range other.Fields {
		if _, ok := e.Fields[k]; !ok {
			e.Fields[k] = v
		}
	}
	return e
}
