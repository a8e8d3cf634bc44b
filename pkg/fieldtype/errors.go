package fieldtype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeNotFound signals a registry lookup for a tag no variant owns.
var ErrTypeNotFound = errors.New("fieldtype: type not found")

// ConstraintError reports a missing or malformed constraint detected while
// constructing a field instance.
type ConstraintError struct {
	Tag     string
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "invalid constraints"
	}
	if strings.TrimSpace(e.Field) == "" {
		return fmt.Sprintf("fieldtype %s: %s", e.Tag, msg)
	}
	return fmt.Sprintf("fieldtype %s: field %q: %s", e.Tag, e.Field, msg)
}

// ValidationError reports an input value that cannot be interpreted under a
// field's type and constraints. Value holds the rejected input as given.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("fieldtype: field %q: %s", e.Field, e.Message)
}
