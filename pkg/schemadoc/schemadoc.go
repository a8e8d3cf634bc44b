// Package schemadoc parses declarative model documents (YAML or JSON) and
// constructs the definitions they describe through the field type registry.
// Documents are a caller-facing convenience layered on the core: the types
// they produce behave exactly as if they had been constructed in code.
package schemadoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
)

// Document is the declarative form of a model definition.
type Document struct {
	Name   string      `yaml:"name" json:"name"`
	UID    string      `yaml:"uid,omitempty" json:"uid,omitempty"`
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldSpec declares one field: its type tag, display name, and the raw
// constraints handed to the variant constructor.
type FieldSpec struct {
	Name        string         `yaml:"name" json:"name"`
	Type        string         `yaml:"type" json:"type"`
	UID         string         `yaml:"uid,omitempty" json:"uid,omitempty"`
	Constraints map[string]any `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// Option customises document parsing.
type Option func(*config)

type config struct {
	registry *fieldtype.Registry
}

// WithRegistry overrides the registry used to resolve field type tags.
func WithRegistry(registry *fieldtype.Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// Parse decodes a YAML or JSON model document and constructs its definition.
// JSON needs no separate path since YAML is a superset.
func Parse(raw []byte, opts ...Option) (model.Definition, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return model.Definition{}, errors.New("schemadoc: document is empty")
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return model.Definition{}, fmt.Errorf("schemadoc: parse document: %w", err)
	}
	return Build(doc, opts...)
}

// Build constructs a model definition from an already-decoded document.
func Build(doc Document, opts ...Option) (model.Definition, error) {
	cfg := config{registry: fieldtype.DefaultRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if doc.Name == "" {
		return model.Definition{}, errors.New("schemadoc: document name is required")
	}

	fields := make([]fieldtype.FieldType, 0, len(doc.Fields))
	for _, spec := range doc.Fields {
		desc, err := cfg.registry.Lookup(spec.Type)
		if err != nil {
			return model.Definition{}, fmt.Errorf("schemadoc: field %q: %w", spec.Name, err)
		}
		var fieldOpts []fieldtype.Option
		if spec.UID != "" {
			fieldOpts = append(fieldOpts, fieldtype.WithUID(spec.UID))
		}
		field, err := desc.New(spec.Name, fieldtype.Constraints(spec.Constraints), fieldOpts...)
		if err != nil {
			return model.Definition{}, fmt.Errorf("schemadoc: field %q: %w", spec.Name, err)
		}
		fields = append(fields, field)
	}

	modelOpts := []model.Option{model.WithRegistry(cfg.registry)}
	if doc.UID != "" {
		modelOpts = append(modelOpts, model.WithUID(doc.UID))
	}
	def, err := model.New(doc.Name, fields, modelOpts...)
	if err != nil {
		return model.Definition{}, fmt.Errorf("schemadoc: %w", err)
	}
	return def, nil
}

// Load reads a document from disk and parses it.
func Load(path string, opts ...Option) (model.Definition, error) {
	if path == "" {
		return model.Definition{}, errors.New("schemadoc: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Definition{}, fmt.Errorf("schemadoc: read document: %w", err)
	}
	return Parse(data, opts...)
}
