package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	valid := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  interface{}
		layout string
		want   string
	}{
		{"Nil", nil, "", "TBD"},
		{"Zero time", time.Time{}, "", "TBD"},
		{"Nil pointer", (*time.Time)(nil), "", "TBD"},
		{"Empty string", "", "", "TBD"},
		{"Garbage string", "not-a-date", "", "TBD"},
		{"Partial garbage", "2025-13-45", "", "TBD"},
		{"Unsupported type", true, "", "TBD"},
		{"Negative epoch", int64(-1), "", "TBD"},
		{"Valid time", valid, "2006-01-02", "2025-06-15"},
		{"Valid pointer", &valid, "2006-01-02", "2025-06-15"},
		{"RFC3339 string", "2025-06-15T10:30:00Z", "2006-01-02", "2025-06-15"},
		{"Plain date string", "2025-06-15", "2006-01-02", "2025-06-15"},
		{"US date string", "06/15/2025", "2006-01-02", "2025-06-15"},
		{"Default layout", valid, "", "June 15, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			assert.NotPanics(t, func() {
				got = FormatDate(tt.input, tt.layout)
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateEpochSeconds(t *testing.T) {
	// 2025-06-15T00:00:00Z as epoch seconds.
	epoch := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC).Unix()
	got := FormatDate(epoch, "2006-01-02")
	// Formatted in local time; only assert it parsed to a real date.
	assert.NotEqual(t, DateFallback, got)
}

func TestFormatDateNeverPanicsOnArbitraryInputs(t *testing.T) {
	inputs := []interface{}{
		nil, "", "���", 0, int64(0), -42, 3.14, []string{"x"},
		map[string]string{}, struct{}{}, (*time.Time)(nil),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { FormatDate(in, "") })
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Shorter than max", "short title", 60, "short title"},
		{"Exactly max", strings.Repeat("a", 60), 60, strings.Repeat("a", 60)},
		{"One over max", strings.Repeat("a", 61), 60, strings.Repeat("a", 60) + "..."},
		{"Empty", "", 60, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

// A truncated title is never longer than the cap plus the ellipsis.
func TestTruncateTitleNeverExceedsCapPlusEllipsis(t *testing.T) {
	for _, n := range []int{0, 1, 59, 60, 61, 100, 500} {
		got := Truncate(strings.Repeat("x", n), titleTruncateAt)
		assert.LessOrEqual(t, len(got), titleTruncateAt+3, "input length %d", n)
	}
}

func TestTruncateDescriptionAt80(t *testing.T) {
	// 81-character description renders as the first 80 characters plus "...".
	desc := strings.Repeat("d", 81)
	got := Truncate(desc, descTruncateAt)
	assert.Equal(t, strings.Repeat("d", 80)+"...", got)
	assert.Len(t, got, 83)
}
