package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"devmeup/models"
)

// queryKeys are the form fields checked, in order, when deriving the display
// query. "niche" only ever appeared in rows from one early template.
var queryKeys = []string{"input", "prompt", "niche"}

// NormalizeRecord converts one stored row into its frontend-facing shape.
// Malformed rows degrade to a fallback mapping instead of dropping out of
// the batch.
func NormalizeRecord(row models.AIOutput) (entry models.HistoryEntry) {
	defer func() {
		if r := recover(); r != nil {
			entry = models.HistoryEntry{
				ID:           row.ID,
				FormData:     map[string]interface{}{"error": "Data format error"},
				AIResponse:   stringOrEmpty(row.AIResponse),
				TemplateSlug: stringOrEmpty(row.TemplateSlug),
				CreatedBy:    row.CreatedBy,
				CreatedAt:    row.CreatedAt,
			}
			entry.Query = deriveQuery(entry.FormData)
		}
	}()

	form := normalizeFormData(row.FormData)
	return models.HistoryEntry{
		ID:           row.ID,
		FormData:     form,
		AIResponse:   stringOrEmpty(row.AIResponse),
		TemplateSlug: stringOrEmpty(row.TemplateSlug),
		CreatedBy:    row.CreatedBy,
		CreatedAt:    row.CreatedAt,
		Query:        deriveQuery(form),
	}
}

// normalizeFormData coerces whatever shape the formData column holds into a
// structured mapping. Older rows stored the payload double-encoded as a JSON
// string, and a few hold plain text or scalars.
func normalizeFormData(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		// truncated or otherwise invalid JSON bytes
		return map[string]interface{}{"text": string(raw)}
	}

	switch v := value.(type) {
	case map[string]interface{}:
		return v
	case string:
		var nested map[string]interface{}
		if err := json.Unmarshal([]byte(v), &nested); err == nil {
			return nested
		}
		return map[string]interface{}{"text": v}
	case nil:
		return map[string]interface{}{}
	default:
		// numbers, booleans, arrays: keep the raw JSON text
		return map[string]interface{}{"text": string(raw)}
	}
}

// deriveQuery extracts the display query from a normalized mapping. When no
// known key holds a non-empty string, the serialized mapping stands in.
func deriveQuery(form map[string]interface{}) string {
	for _, key := range queryKeys {
		if v, ok := form[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	serialized, err := json.Marshal(form)
	if err != nil {
		return "{}"
	}
	return string(serialized)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
