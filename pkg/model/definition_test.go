package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
)

func mustField(t *testing.T, tag, name string, constraints fieldtype.Constraints) fieldtype.FieldType {
	t.Helper()

	field, err := fieldtype.New(tag, name, constraints)
	if err != nil {
		t.Fatalf("new %s field %q: %v", tag, name, err)
	}
	return field
}

// rogueField satisfies the FieldType interface without being registered.
type rogueField struct{}

func (rogueField) Tag() string                        { return "rogue" }
func (rogueField) Name() string                       { return "rogue" }
func (rogueField) UID() string                        { return "" }
func (rogueField) Nullable() bool                     { return false }
func (rogueField) Constraints() fieldtype.Constraints { return nil }
func (rogueField) Validate(value any) (any, error)    { return value, nil }

func TestNewPreservesFieldOrder(t *testing.T) {
	fields := []fieldtype.FieldType{
		mustField(t, fieldtype.TagText, "full_name", nil),
		mustField(t, fieldtype.TagNumber, "age", fieldtype.Constraints{"nullable": true}),
		mustField(t, fieldtype.TagDate, "joined", nil),
		mustField(t, fieldtype.TagEnum, "status", fieldtype.Constraints{"options": []string{"active", "inactive"}}),
	}

	def, err := model.New("contact", fields, model.WithUID("01HZXW3V0000000000000000AA"))
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}
	if def.Name() != "contact" {
		t.Fatalf("expected name %q, got %q", "contact", def.Name())
	}
	if def.UID() != "01HZXW3V0000000000000000AA" {
		t.Fatalf("unexpected uid %q", def.UID())
	}

	var got []string
	for _, field := range def.Fields() {
		got = append(got, field.Name())
	}
	want := []string{"full_name", "age", "joined", "status"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejectsNonConformingElements(t *testing.T) {
	var cerr *model.ConfigurationError

	_, err := model.New("contact", []fieldtype.FieldType{nil})
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError for nil field, got %v", err)
	}

	_, err = model.New("contact", []fieldtype.FieldType{
		mustField(t, fieldtype.TagText, "full_name", nil),
		rogueField{},
	})
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError for unregistered field, got %v", err)
	}
	if cerr.Index != 1 {
		t.Fatalf("expected the offending index to be 1, got %d", cerr.Index)
	}

	_, err = model.New("", nil)
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError for missing name, got %v", err)
	}
}

func TestNewWithCustomRegistry(t *testing.T) {
	registry := fieldtype.NewRegistry()
	registry.MustRegister(fieldtype.Descriptor{Tag: fieldtype.TagText, New: fieldtype.NewText})

	text := mustField(t, fieldtype.TagText, "full_name", nil)
	if _, err := model.New("contact", []fieldtype.FieldType{text}, model.WithRegistry(registry)); err != nil {
		t.Fatalf("new definition with custom registry: %v", err)
	}

	number := mustField(t, fieldtype.TagNumber, "age", nil)
	var cerr *model.ConfigurationError
	_, err := model.New("contact", []fieldtype.FieldType{number}, model.WithRegistry(registry))
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError for tag outside custom registry, got %v", err)
	}
}

func TestValidateRecord(t *testing.T) {
	def, err := model.New("contact", []fieldtype.FieldType{
		mustField(t, fieldtype.TagText, "full_name", nil),
		mustField(t, fieldtype.TagNumber, "age", fieldtype.Constraints{"nullable": true}),
		mustField(t, fieldtype.TagEnum, "status", fieldtype.Constraints{"options": []string{"active", "inactive"}}),
	})
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}

	record := map[string]any{
		"full_name": 3,
		"status":    "active",
	}
	coerced, err := def.ValidateRecord(record)
	if err != nil {
		t.Fatalf("validate record: %v", err)
	}

	want := map[string]any{
		"full_name": "3",
		"age":       nil,
		"status":    "active",
	}
	if diff := cmp.Diff(want, coerced); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	// The input record is left untouched.
	if record["full_name"] != 3 {
		t.Fatalf("input record was mutated: %v", record["full_name"])
	}

	_, err = def.ValidateRecord(map[string]any{
		"full_name": "Ada",
		"status":    "archived",
	})
	var verr *fieldtype.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "status" {
		t.Fatalf("expected the failing field to be status, got %q", verr.Field)
	}
}
