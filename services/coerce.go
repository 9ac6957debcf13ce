package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerant coercion helpers for raw item rows. Rows arrive from sqlite, from
// a remote JSON API, or from spreadsheet imports, so the same logical field
// may show up as int64, float64, json.Number, bool or a string encoding.
// Every helper returns (zero, false) for values it cannot interpret; absence
// is never an error.

// AsString returns the value as a trimmed string, false when missing/blank
func AsString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		trimmed := strings.TrimSpace(s)
		return trimmed, trimmed != ""
	case json.Number:
		return s.String(), true
	case nil:
		return "", false
	}
	return "", false
}

// AsID accepts numeric or string identifiers and normalizes them to a string
func AsID(v interface{}) (string, bool) {
	switch id := v.(type) {
	case string:
		trimmed := strings.TrimSpace(id)
		return trimmed, trimmed != ""
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case float64:
		// JSON numbers decode as float64; only whole values are valid ids
		if id == math.Trunc(id) && !math.IsInf(id, 0) {
			return strconv.FormatInt(int64(id), 10), true
		}
		return "", false
	case json.Number:
		return id.String(), true
	}
	return "", false
}

// AsNumber coerces numeric types and finite numeric strings to float64
func AsNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// AsInt coerces through AsNumber and truncates
func AsInt(v interface{}) (int, bool) {
	f, ok := AsNumber(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// AsBoolean accepts booleans, numeric 0/1 and the case-insensitive string
// encodings "true"/"1"/"yes" and "false"/"0"/"no"
func AsBoolean(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int:
		if b == 0 || b == 1 {
			return b == 1, true
		}
	case int64:
		if b == 0 || b == 1 {
			return b == 1, true
		}
	case float64:
		if b == 0 || b == 1 {
			return b == 1, true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
	}
	return false, false
}

// AsStringArray accepts genuine lists and comma-separated strings; both
// normalize to trimmed, non-empty entries
func AsStringArray(v interface{}) []string {
	var parts []string
	switch list := v.(type) {
	case []string:
		parts = list
	case []interface{}:
		for _, item := range list {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
	case string:
		parts = strings.Split(list, ",")
	default:
		return nil
	}

	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
