package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-fieldtypes/pkg/fieldtype"
	"github.com/goliatone/go-fieldtypes/pkg/model"
	"github.com/goliatone/go-fieldtypes/pkg/schemadoc"
)

func main() {
	schemaPath := flag.String("schema", "model.yaml", "model definition document (YAML or JSON)")
	input := flag.String("input", "", "JSON record to validate (stdin if empty)")
	prompt := flag.Bool("prompt", false, "prompt interactively for field values instead of reading a record")
	output := flag.String("output", "", "output file for the coerced record (stdout if empty)")
	flag.Parse()

	def, err := schemadoc.Load(*schemaPath)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	var record map[string]any
	if *prompt {
		record, err = promptRecord(def)
	} else {
		record, err = readRecord(*input)
	}
	if err != nil {
		log.Fatalf("Failed to read record: %v", err)
	}

	coerced, err := def.ValidateRecord(record)
	if err != nil {
		log.Fatalf("Record is invalid: %v", err)
	}

	payload, err := json.MarshalIndent(coerced, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode record: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Record written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func readRecord(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return record, nil
}

// promptRecord asks for each field in definition order. Empty answers on
// nullable fields are left out of the record so they validate as the null
// marker.
func promptRecord(def model.Definition) (map[string]any, error) {
	record := make(map[string]any)
	for _, field := range def.Fields() {
		message := fmt.Sprintf("%s (%s):", field.Name(), field.Tag())

		var answer string
		if enum, ok := field.(*fieldtype.Enum); ok {
			q := &survey.Select{Message: message, Options: enum.Options()}
			if err := survey.AskOne(q, &answer); err != nil {
				return nil, err
			}
			record[field.Name()] = answer
			continue
		}

		q := &survey.Input{Message: message}
		if err := survey.AskOne(q, &answer); err != nil {
			return nil, err
		}
		if answer == "" && field.Nullable() {
			continue
		}
		record[field.Name()] = answer
	}
	return record, nil
}
