// Package testsupport holds helpers shared by the package tests: golden file
// handling gated by UPDATE_GOLDENS and go-cmp based comparisons.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
)

// FieldSummary is the golden-friendly projection of one field instance.
type FieldSummary struct {
	Name     string `json:"name"`
	Tag      string `json:"tag"`
	Nullable bool   `json:"nullable"`
}

// Summarize projects a definition's fields for golden comparisons.
func Summarize(def model.Definition) []FieldSummary {
	fields := def.Fields()
	out := make([]FieldSummary, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldSummary{
			Name:     field.Name(),
			Tag:      field.Tag(),
			Nullable: field.Nullable(),
		})
	}
	return out
}

// EnumOptions returns the option list when the field is an enum, nil
// otherwise.
func EnumOptions(field fieldtype.FieldType) []string {
	enum, ok := field.(*fieldtype.Enum)
	if !ok {
		return nil
	}
	return enum.Options()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustLoadSummaries reads a JSON golden file of field summaries.
func MustLoadSummaries(t *testing.T, path string) []FieldSummary {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var out []FieldSummary
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteSummaries updates a golden file when UPDATE_GOLDENS is set.
func WriteSummaries(t *testing.T, path string, value []FieldSummary) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
