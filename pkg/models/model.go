// Package models defines the marketplace listing records: the untyped raw
// form returned by the API and the flat normalized form this tool outputs.
package models

// RawModel is one listing record exactly as the marketplace API returned it.
// The shape is not guaranteed; any field may be absent.
type RawModel map[string]any

// Model is the normalized, fixed-schema representation of one marketplace
// listing. Every field is defaulted from the raw record via ordered fallback
// rules (see Normalize); instances are immutable once created.
type Model struct {
	ID                       string   `json:"id"`
	Registry                 string   `json:"registry"`
	Name                     string   `json:"name"`
	OriginalName             string   `json:"original_name"`
	FriendlyName             string   `json:"friendly_name"`
	Task                     string   `json:"task"`
	Publisher                string   `json:"publisher"`
	License                  string   `json:"license"`
	Description              string   `json:"description"`
	Summary                  string   `json:"summary"`
	ModelFamily              string   `json:"model_family"`
	ModelVersion             string   `json:"model_version"`
	Notes                    string   `json:"notes"`
	Tags                     []string `json:"tags"`
	RateLimitTier            string   `json:"rate_limit_tier"`
	SupportedLanguages       []string `json:"supported_languages"`
	MaxOutputTokens          string   `json:"max_output_tokens"`
	MaxInputTokens           string   `json:"max_input_tokens"`
	TrainingDataDate         string   `json:"training_data_date"`
	Evaluation               string   `json:"evaluation"`
	LicenseDescription       string   `json:"license_description"`
	StaticModel              bool     `json:"static_model"`
	SupportedInputModalities []string `json:"supported_input_modalities"`
	Type                     string   `json:"type"`
	ModelURL                 string   `json:"model_url"`

	// Page records which API page this model was fetched on.
	Page int `json:"page"`
}
