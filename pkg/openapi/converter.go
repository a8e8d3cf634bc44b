// Package openapi converts OpenAPI object schemas into model definitions so
// services already described by an OpenAPI document can validate records
// without re-declaring their fields.
package openapi

import (
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
)

// dateTimePattern parses RFC 3339 date-time property values before truncation
// to their calendar date.
const dateTimePattern = "%Y-%m-%dT%H:%M:%S%z"

// Option customises schema conversion.
type Option func(*config)

type config struct {
	lenient bool
}

// WithLenient skips properties whose schema type has no field type
// equivalent instead of failing the whole conversion.
func WithLenient() Option {
	return func(c *config) {
		c.lenient = true
	}
}

// FromSchema converts an OpenAPI object schema into a model definition.
// Properties are visited in name order so the resulting field order is
// deterministic. A property is nullable when it is not listed as required or
// its schema is marked nullable.
func FromSchema(name string, schema *openapi3.Schema, opts ...Option) (model.Definition, error) {
	if schema == nil {
		return model.Definition{}, errors.New("openapi: schema is nil")
	}
	if !schema.Type.Is(openapi3.TypeObject) {
		return model.Definition{}, fmt.Errorf("openapi: expected an object schema, got %v", schema.Type)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, prop := range schema.Required {
		required[prop] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		names = append(names, prop)
	}
	sort.Strings(names)

	fields := make([]fieldtype.FieldType, 0, len(names))
	for _, prop := range names {
		ref := schema.Properties[prop]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := fieldFromProperty(prop, ref.Value, !required[prop] || ref.Value.Nullable)
		if err != nil {
			if cfg.lenient {
				continue
			}
			return model.Definition{}, err
		}
		fields = append(fields, field)
	}

	def, err := model.New(name, fields)
	if err != nil {
		return model.Definition{}, fmt.Errorf("openapi: %w", err)
	}
	return def, nil
}

func fieldFromProperty(name string, prop *openapi3.Schema, nullable bool) (fieldtype.FieldType, error) {
	constraints := fieldtype.Constraints{}
	if nullable {
		constraints["nullable"] = true
	}

	switch {
	case len(prop.Enum) > 0:
		constraints["options"] = prop.Enum
		return fieldtype.New(fieldtype.TagEnum, name, constraints)
	case prop.Type.Is(openapi3.TypeString) && prop.Format == "date":
		return fieldtype.New(fieldtype.TagDate, name, constraints)
	case prop.Type.Is(openapi3.TypeString) && prop.Format == "date-time":
		constraints["format"] = dateTimePattern
		return fieldtype.New(fieldtype.TagDate, name, constraints)
	case prop.Type.Is(openapi3.TypeNumber) || prop.Type.Is(openapi3.TypeInteger):
		return fieldtype.New(fieldtype.TagNumber, name, constraints)
	case prop.Type.Is(openapi3.TypeString):
		return fieldtype.New(fieldtype.TagText, name, constraints)
	}

	return nil, fmt.Errorf("openapi: property %q: unsupported schema type %v", name, prop.Type)
}
