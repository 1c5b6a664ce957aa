package pdf

import (
	"time"
)

// DateFallback is drawn wherever a date field is missing or unparsable.
const DateFallback = "TBD"

// DefaultDateLayout matches the long-form dates used across the review documents.
const DefaultDateLayout = "January 2, 2006"

// Layouts accepted when a date arrives as a string. Upstream records carry
// RFC3339 timestamps, but older rows have plain dates or US-style ones.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	time.RFC1123,
}

// FormatDate renders an arbitrary upstream value as a date string, or
// DateFallback when the value is missing or does not parse. It never panics;
// every date drawn onto a page goes through here.
func FormatDate(v interface{}, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}

	switch t := v.(type) {
	case nil:
		return DateFallback
	case time.Time:
		if t.IsZero() {
			return DateFallback
		}
		return t.Format(layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return DateFallback
		}
		return t.Format(layout)
	case string:
		if t == "" {
			return DateFallback
		}
		for _, l := range dateLayouts {
			if parsed, err := time.Parse(l, t); err == nil {
				return parsed.Format(layout)
			}
		}
		return DateFallback
	case int64:
		return formatEpoch(t, layout)
	case int:
		return formatEpoch(int64(t), layout)
	case float64:
		return formatEpoch(int64(t), layout)
	default:
		return DateFallback
	}
}

// formatEpoch treats large values as epoch milliseconds, the rest as seconds.
func formatEpoch(v int64, layout string) string {
	if v <= 0 {
		return DateFallback
	}
	if v > 1e12 {
		return time.UnixMilli(v).Format(layout)
	}
	return time.Unix(v, 0).Format(layout)
}

// Truncate caps s at max characters, appending "..." when it was longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// orDefault centralizes the fallback policy for optional string fields.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
