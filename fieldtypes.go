// Package fieldtypes exposes the common entry points of the module: variant
// construction through the default registry, declarative definition loading,
// and record validation. The underlying packages (pkg/fieldtype, pkg/model,
// pkg/schemadoc, pkg/openapi) remain available for callers needing more
// control.
package fieldtypes

import (
	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
	"github.com/goliatone/go-fieldtypes/pkg/schemadoc"
)

// NewField constructs a field variant through the default registry.
func NewField(tag, name string, constraints fieldtype.Constraints, opts ...fieldtype.Option) (fieldtype.FieldType, error) {
	return fieldtype.New(tag, name, constraints, opts...)
}

// NewDefinition aggregates field instances into a record definition.
func NewDefinition(name string, fields []fieldtype.FieldType, opts ...model.Option) (model.Definition, error) {
	return model.New(name, fields, opts...)
}

// LoadDefinition reads a YAML or JSON model document from disk.
func LoadDefinition(path string) (model.Definition, error) {
	return schemadoc.Load(path)
}

// ValidateRecord coerces one record against a definition, returning the
// canonical values or the first validation failure.
func ValidateRecord(def model.Definition, record map[string]any) (map[string]any, error) {
	return def.ValidateRecord(record)
}
