package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = bluemonday.UGCPolicy()

// FieldValue looks a field up in a raw row, accepting both snake_case and
// camelCase column names so callers need not know which surface produced
// the row.
func FieldValue(row map[string]interface{}, field string) (interface{}, bool) {
	if v, ok := row[field]; ok && v != nil {
		return v, true
	}
	if v, ok := row[snakeToCamel(field)]; ok && v != nil {
		return v, true
	}
	return nil, false
}

// Localize selects `{field}_{locale}` from a raw row, falling back once to
// the other locale when the primary value is missing or blank. The fallback
// is evaluated per field and per record, never cached across records.
func Localize(row map[string]interface{}, field string, loc Locale) (string, bool) {
	if v, ok := FieldValue(row, field+"_"+string(loc)); ok {
		if s, ok := AsString(v); ok {
			return s, true
		}
	}
	if v, ok := FieldValue(row, field+"_"+string(loc.Other())); ok {
		if s, ok := AsString(v); ok {
			return s, true
		}
	}
	return "", false
}

// LocalizeHTML localizes a rich-text field and sanitizes the markup. CMS
// editors paste arbitrary HTML into description columns; everything outside
// the UGC policy is stripped before it reaches a response.
func LocalizeHTML(row map[string]interface{}, field string, loc Locale) (string, bool) {
	s, ok := Localize(row, field, loc)
	if !ok {
		return "", false
	}
	return richTextPolicy.Sanitize(s), true
}

// snakeToCamel converts a snake_case column name to its camelCase variant
// (hero_image_url -> heroImageUrl)
func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
