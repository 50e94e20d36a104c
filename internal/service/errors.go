package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries a field-keyed map of what was wrong with the
// input. Handlers serialize it as a 400 body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "invalid input: " + strings.Join(parts, "; ")
}

func validationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
