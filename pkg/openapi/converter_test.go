package openapi_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/openapi"
	"github.com/goliatone/go-fieldtypes/pkg/testsupport"
)

func petSchema() *openapi3.Schema {
	color := openapi3.NewStringSchema()
	color.Enum = []any{"black", "white", "ginger"}

	schema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("age", openapi3.NewIntegerSchema()).
		WithProperty("weight", openapi3.NewFloat64Schema()).
		WithProperty("born", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("registered", openapi3.NewStringSchema().WithFormat("date-time")).
		WithProperty("color", color)
	schema.Required = []string{"name", "born"}
	return schema
}

func TestFromSchema(t *testing.T) {
	def, err := openapi.FromSchema("pet", petSchema())
	if err != nil {
		t.Fatalf("from schema: %v", err)
	}

	goldenPath := filepath.Join("testdata", "pet_fields.golden.json")
	got := testsupport.Summarize(def)
	testsupport.WriteSummaries(t, goldenPath, got)
	want := testsupport.MustLoadSummaries(t, goldenPath)

	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	record, err := def.ValidateRecord(map[string]any{
		"name":       "Misha",
		"born":       "2019-05-01",
		"registered": "2019-05-02T10:30:00Z",
		"color":      "ginger",
		"age":        "6",
	})
	if err != nil {
		t.Fatalf("validate record: %v", err)
	}
	if record["age"] != 6.0 {
		t.Fatalf("expected age to coerce to 6.0, got %v", record["age"])
	}
	registered := record["registered"].(time.Time)
	if !registered.Equal(time.Date(2019, time.May, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date-time to truncate to its date, got %v", registered)
	}
}

func TestFromSchemaEnumOptions(t *testing.T) {
	def, err := openapi.FromSchema("pet", petSchema())
	if err != nil {
		t.Fatalf("from schema: %v", err)
	}

	for _, field := range def.Fields() {
		if field.Tag() != fieldtype.TagEnum {
			continue
		}
		options := testsupport.EnumOptions(field)
		want := []string{"black", "white", "ginger"}
		if diff := testsupport.CompareGolden(want, options); diff != "" {
			t.Fatalf("enum options mismatch (-want +got):\n%s", diff)
		}
		return
	}
	t.Fatal("expected an enum field in the converted definition")
}

func TestFromSchemaUnsupportedProperty(t *testing.T) {
	schema := petSchema().WithProperty("vaccinated", openapi3.NewBoolSchema())

	if _, err := openapi.FromSchema("pet", schema); err == nil {
		t.Fatal("expected unsupported property type to fail")
	}

	def, err := openapi.FromSchema("pet", schema, openapi.WithLenient())
	if err != nil {
		t.Fatalf("lenient conversion: %v", err)
	}
	for _, field := range def.Fields() {
		if field.Name() == "vaccinated" {
			t.Fatal("expected unsupported property to be skipped")
		}
	}
}

func TestFromSchemaRejectsNonObjects(t *testing.T) {
	if _, err := openapi.FromSchema("pet", nil); err == nil {
		t.Fatal("expected nil schema to fail")
	}
	if _, err := openapi.FromSchema("pet", openapi3.NewStringSchema()); err == nil {
		t.Fatal("expected non-object schema to fail")
	}
}
