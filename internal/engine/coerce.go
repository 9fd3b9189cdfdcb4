package engine

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToNumber converts an arbitrary cell value to a float64, returning 0
// for nil, empty, or unparsable input. Raw cells routinely hold blanks,
// placeholder strings, or mixed types, so every numeric aggregation
// goes through here instead of failing on a bad row.
func ToNumber(v interface{}) float64 {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if val {
			f = 1
		}
	case string:
		s := strings.TrimSpace(val)
		s = strings.ReplaceAll(s, ",", "") // handle "1,234.56"
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	// NaN/Inf must never reach the serialized envelope.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// dateLayouts are tried in order. The compact and dotted forms show up
// in SAP extracts; the rest cover spreadsheet exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02.01.2006",
	"20060102",
}

// ToDate converts an arbitrary cell value to a calendar date. The
// second return is false for nil or unparsable input; callers must
// exclude such rows from date-dependent metrics rather than treat the
// zero time as a real date.
func ToDate(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val, true
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// dateOnly strips the time-of-day component so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference b - a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
