package config

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()

	if schema.Schema != "https://json-schema.org/draft/2020-12/schema" {
		t.Errorf("Schema = %s, want draft/2020-12", schema.Schema)
	}
	if schema.Type != "object" {
		t.Errorf("Type = %s, want object", schema.Type)
	}
	if schema.Title != "Planner run configuration" {
		t.Errorf("Title = %s, want Planner run configuration", schema.Title)
	}

	requiredSet := make(map[string]bool)
	for _, r := range schema.Required {
		requiredSet[r] = true
	}
	if !requiredSet["runs"] {
		t.Error("runs should be required")
	}

	if _, ok := schema.Properties["runs"]; !ok {
		t.Fatal("missing property: runs")
	}
	if schema.Properties["runs"].Type != "array" {
		t.Errorf("runs.Type = %s, want array", schema.Properties["runs"].Type)
	}
}

func TestGenerateSchema_RunProperties(t *testing.T) {
	schema := GenerateSchema()
	run := schema.Properties["runs"].Items

	if run.Type != "object" {
		t.Errorf("run.Type = %s, want object", run.Type)
	}

	expectedProps := []string{"name", "task_file", "search", "max_time", "max_memory", "log_level"}
	for _, prop := range expectedProps {
		if _, ok := run.Properties[prop]; !ok {
			t.Errorf("run missing property: %s", prop)
		}
	}

	requiredSet := make(map[string]bool)
	for _, r := range run.Required {
		requiredSet[r] = true
	}
	if !requiredSet["name"] || !requiredSet["search"] {
		t.Errorf("run.Required = %v, want name and search", run.Required)
	}

	logLevel := run.Properties["log_level"]
	if len(logLevel.Enum) != 4 {
		t.Errorf("log_level.Enum has %d values, want 4", len(logLevel.Enum))
	}
}

func TestSchemaJSON(t *testing.T) {
	jsonStr, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		t.Fatalf("SchemaJSON() returned invalid JSON: %v", err)
	}

	if parsed["$schema"] == nil {
		t.Error("Schema missing $schema")
	}
	if parsed["title"] != "Planner run configuration" {
		t.Errorf("title = %v, want Planner run configuration", parsed["title"])
	}
	if parsed["type"] != "object" {
		t.Errorf("type = %v, want object", parsed["type"])
	}
}

func TestSchemaJSON_ValidFormat(t *testing.T) {
	jsonStr, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error = %v", err)
	}

	if len(jsonStr) > 0 && jsonStr[0] != '{' {
		t.Error("SchemaJSON() should start with {")
	}
	if !contains(jsonStr, "\n") {
		t.Error("SchemaJSON() should be indented (contain newlines)")
	}
}

func contains(s, substr string) bool {
	for i := 0; i < len(s)-len(substr)+1; i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
