package model

import (
	"fmt"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
)

// ConfigurationError reports a definition element that does not satisfy the
// field type contract. Index is -1 when the problem is the definition itself.
type ConfigurationError struct {
	Definition string
	Index      int
	Message    string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("model %q: %s", e.Definition, e.Message)
	}
	return fmt.Sprintf("model %q: field %d: %s", e.Definition, e.Index, e.Message)
}

// Option customises optional definition attributes at construction time.
type Option func(*definitionOptions)

type definitionOptions struct {
	uid      string
	registry *fieldtype.Registry
}

// WithUID sets the unique identifier for the constructed definition.
func WithUID(uid string) Option {
	return func(o *definitionOptions) {
		o.uid = uid
	}
}

// WithRegistry overrides the registry used to recognise field variants.
// Definitions carrying custom variants must name the registry they were
// registered with.
func WithRegistry(registry *fieldtype.Registry) Option {
	return func(o *definitionOptions) {
		o.registry = registry
	}
}

// Definition describes one record shape as an ordered sequence of field type
// instances. Definitions are immutable after construction.
type Definition struct {
	name   string
	uid    string
	fields []fieldtype.FieldType
}

// New builds a Definition after verifying every element is a recognised
// variant instance. The first non-conforming element fails construction with
// a *ConfigurationError naming its type. Duplicate field names are not
// rejected here; that policy belongs to callers.
func New(name string, fields []fieldtype.FieldType, opts ...Option) (Definition, error) {
	if name == "" {
		return Definition{}, &ConfigurationError{Definition: name, Index: -1, Message: "definition name is required"}
	}

	cfg := definitionOptions{registry: fieldtype.DefaultRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}

	kept := make([]fieldtype.FieldType, len(fields))
	for i, field := range fields {
		if field == nil {
			return Definition{}, &ConfigurationError{Definition: name, Index: i, Message: "field is nil"}
		}
		if _, err := cfg.registry.Lookup(field.Tag()); err != nil {
			return Definition{}, &ConfigurationError{
				Definition: name,
				Index:      i,
				Message:    fmt.Sprintf("unrecognised field type %T (tag %q)", field, field.Tag()),
			}
		}
		kept[i] = field
	}

	return Definition{name: name, uid: cfg.uid, fields: kept}, nil
}

// Name returns the definition's display name.
func (d Definition) Name() string { return d.name }

// UID returns the definition's unique identifier, if one was supplied.
func (d Definition) UID() string { return d.uid }

// Fields returns the definition's fields in declaration order.
func (d Definition) Fields() []fieldtype.FieldType {
	out := make([]fieldtype.FieldType, len(d.fields))
	copy(out, d.fields)
	return out
}

// ValidateRecord coerces every field value in the record, treating absent
// keys as the null marker. It returns a new record with canonical values and
// never mutates the input; the first failing field aborts the whole record.
func (d Definition) ValidateRecord(record map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(d.fields))
	for _, field := range d.fields {
		coerced, err := field.Validate(record[field.Name()])
		if err != nil {
			return nil, err
		}
		out[field.Name()] = coerced
	}
	return out, nil
}
