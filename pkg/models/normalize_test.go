package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalize_NameOnlyFallbacks(t *testing.T) {
	raw := RawModel{"name": "gpt-4o-mini"}

	m := Normalize(raw, 3)

	if m.ID != "gpt-4o-mini" {
		t.Errorf("ID = %q, want %q", m.ID, "gpt-4o-mini")
	}
	if m.Name != "gpt-4o-mini" {
		t.Errorf("Name = %q, want %q", m.Name, "gpt-4o-mini")
	}
	if m.OriginalName != "gpt-4o-mini" {
		t.Errorf("OriginalName = %q, want %q", m.OriginalName, "gpt-4o-mini")
	}
	if m.FriendlyName != "gpt-4o-mini" {
		t.Errorf("FriendlyName = %q, want %q", m.FriendlyName, "gpt-4o-mini")
	}
	if m.Page != 3 {
		t.Errorf("Page = %d, want 3", m.Page)
	}
}

func TestNormalize_PreferredSourcesWin(t *testing.T) {
	raw := RawModel{
		"name":          "deepseek-r1",
		"friendly_name": "DeepSeek R1",
		"original_name": "DeepSeek-R1",
	}

	m := Normalize(raw, 1)

	if m.ID != "DeepSeek-R1" {
		t.Errorf("ID = %q, want original_name", m.ID)
	}
	if m.Name != "DeepSeek R1" {
		t.Errorf("Name = %q, want friendly_name", m.Name)
	}
	if m.OriginalName != "DeepSeek-R1" {
		t.Errorf("OriginalName = %q, want original_name", m.OriginalName)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	m := Normalize(RawModel{}, 1)

	if m.Task != "unknown" {
		t.Errorf("Task = %q, want %q", m.Task, "unknown")
	}
	if m.ModelFamily != "unknown" {
		t.Errorf("ModelFamily = %q, want %q", m.ModelFamily, "unknown")
	}
	if m.Publisher != "" || m.License != "" || m.Description != "" {
		t.Error("string fields should default to empty")
	}
	if m.StaticModel {
		t.Error("StaticModel should default to false")
	}
	if m.Tags == nil || len(m.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", m.Tags)
	}
	if m.SupportedLanguages == nil || m.SupportedInputModalities == nil {
		t.Error("list fields should default to empty non-nil slices")
	}
}

func TestNormalize_FieldTypes(t *testing.T) {
	// Decode through encoding/json so raw values carry JSON types (float64).
	var raw RawModel
	body := `{
		"name": "phi-3",
		"max_input_tokens": 128000,
		"max_output_tokens": "4096",
		"static_model": true,
		"tags": ["reasoning", "multilingual"],
		"supported_input_modalities": ["text", "image"]
	}`
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("unmarshal raw record: %v", err)
	}

	m := Normalize(raw, 2)

	if m.MaxInputTokens != "128000" {
		t.Errorf("MaxInputTokens = %q, want %q", m.MaxInputTokens, "128000")
	}
	if m.MaxOutputTokens != "4096" {
		t.Errorf("MaxOutputTokens = %q, want %q", m.MaxOutputTokens, "4096")
	}
	if !m.StaticModel {
		t.Error("StaticModel = false, want true")
	}
	if want := []string{"reasoning", "multilingual"}; !reflect.DeepEqual(m.Tags, want) {
		t.Errorf("Tags = %v, want %v", m.Tags, want)
	}
	if want := []string{"text", "image"}; !reflect.DeepEqual(m.SupportedInputModalities, want) {
		t.Errorf("SupportedInputModalities = %v, want %v", m.SupportedInputModalities, want)
	}
}

func TestNormalize_NullCountsAsAbsent(t *testing.T) {
	var raw RawModel
	if err := json.Unmarshal([]byte(`{"name": "llama-3", "friendly_name": null, "task": null}`), &raw); err != nil {
		t.Fatalf("unmarshal raw record: %v", err)
	}

	m := Normalize(raw, 1)

	if m.FriendlyName != "llama-3" {
		t.Errorf("FriendlyName = %q, want fallback to name", m.FriendlyName)
	}
	if m.Task != "unknown" {
		t.Errorf("Task = %q, want default", m.Task)
	}
}
