package config

import (
	"encoding/json"
)

// JSONSchema represents a JSON Schema document.
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
	Enum                 []string               `json:"enum,omitempty"`
	Default              any                    `json:"default,omitempty"`
	Minimum              *float64               `json:"minimum,omitempty"`
	Maximum              *float64               `json:"maximum,omitempty"`
	MinLength            *int                   `json:"minLength,omitempty"`
	MaxLength            *int                   `json:"maxLength,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
	Format               string                 `json:"format,omitempty"`
	Ref                  string                 `json:"$ref,omitempty"`
	Definitions          map[string]*JSONSchema `json:"$defs,omitempty"`
	OneOf                []*JSONSchema          `json:"oneOf,omitempty"`
	AnyOf                []*JSONSchema          `json:"anyOf,omitempty"`
	AllOf                []*JSONSchema          `json:"allOf,omitempty"`
}

// GenerateSchema generates a JSON Schema for a run-configuration
// document, for `planner validate-config --schema`-style tooling and
// for editors to offer completion on hand-written run-configuration
// files.
func GenerateSchema() *JSONSchema {
	return &JSONSchema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		ID:          "https://github.com/felixgeelhaar/planner-go/run-config.schema.json",
		Title:       "Planner run configuration",
		Description: "One or more named search runs loadable as an alternative to the inline CLI search-spec grammar",
		Type:        "object",
		Required:    []string{"runs"},
		Properties: map[string]*JSONSchema{
			"runs": {
				Type:        "array",
				Description: "The list of named runs this document defines",
				Items:       generateRunSchema(),
			},
		},
	}
}

func generateRunSchema() *JSONSchema {
	return &JSONSchema{
		Type:        "object",
		Description: "One named search run",
		Required:    []string{"name", "search"},
		Properties: map[string]*JSONSchema{
			"name": {
				Type:        "string",
				Description: "Identifies this run, e.g. for the plan output file suffix an iterated search produces",
			},
			"task_file": {
				Type:        "string",
				Description: "Task input path; omit to read from stdin",
			},
			"search": {
				Type:        "string",
				Description: "A search-spec string in the infrastructure/searchspec grammar, e.g. astar(heuristic=sum([g(),weight(h(),2)]))",
			},
			"max_time": {
				Type:        "string",
				Description: "Wall-clock budget for this run (e.g. '30s', '5m'); omit for unbounded",
				Format:      "duration",
			},
			"max_memory": {
				Type:        "integer",
				Description: "Peak memory budget in kilobytes; omit for unbounded",
				Minimum:     floatPtr(0),
			},
			"log_level": {
				Type:        "string",
				Description: "Overrides the default log level for this run",
				Enum:        []string{"debug", "info", "warn", "error"},
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

// SchemaJSON returns the JSON Schema as a JSON string.
func SchemaJSON() (string, error) {
	schema := GenerateSchema()
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
