package models

import "strconv"

// Normalize converts a raw marketplace record into a Model. Each output
// field is filled from an ordered list of source fields, falling back to a
// fixed default when none is present. A record with missing fields is still
// valid output; there is no partial-record validation.
func Normalize(raw RawModel, page int) Model {
	return Model{
		ID:                       str(raw, "", "original_name", "name"),
		Registry:                 str(raw, "", "registry"),
		Name:                     str(raw, "", "friendly_name", "name"),
		OriginalName:             str(raw, "", "original_name", "name"),
		FriendlyName:             str(raw, "", "friendly_name", "name"),
		Task:                     str(raw, "unknown", "task"),
		Publisher:                str(raw, "", "publisher"),
		License:                  str(raw, "", "license"),
		Description:              str(raw, "", "description"),
		Summary:                  str(raw, "", "summary"),
		ModelFamily:              str(raw, "unknown", "model_family"),
		ModelVersion:             str(raw, "", "model_version"),
		Notes:                    str(raw, "", "notes"),
		Tags:                     list(raw, "tags"),
		RateLimitTier:            str(raw, "", "rate_limit_tier"),
		SupportedLanguages:       list(raw, "supported_languages"),
		MaxOutputTokens:          str(raw, "", "max_output_tokens"),
		MaxInputTokens:           str(raw, "", "max_input_tokens"),
		TrainingDataDate:         str(raw, "", "training_data_date"),
		Evaluation:               str(raw, "", "evaluation"),
		LicenseDescription:       str(raw, "", "license_description"),
		StaticModel:              boolean(raw, false, "static_model"),
		SupportedInputModalities: list(raw, "supported_input_modalities"),
		Type:                     str(raw, "", "type"),
		ModelURL:                 str(raw, "", "model_url"),
		Page:                     page,
	}
}

// str returns the first present source field as a string. JSON numbers are
// rendered in decimal form so numeric-as-string fields (token limits) keep a
// stable representation. Null and unconvertible values count as absent.
func str(raw RawModel, def string, sources ...string) string {
	for _, src := range sources {
		v, ok := raw[src]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			return t
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return def
}

// list returns the first present source field as a string slice. The default
// is an empty slice, never nil, so JSON output stays "[]".
func list(raw RawModel, sources ...string) []string {
	for _, src := range sources {
		v, ok := raw[src]
		if !ok || v == nil {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			switch t := item.(type) {
			case string:
				out = append(out, t)
			case float64:
				out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
			}
		}
		return out
	}
	return []string{}
}

func boolean(raw RawModel, def bool, sources ...string) bool {
	for _, src := range sources {
		if v, ok := raw[src]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return def
}
