package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/araad04/eqms/models"
	"github.com/stretchr/testify/assert"
)

func makeInputs(specs ...[2]string) []models.ReviewInput {
	inputs := make([]models.ReviewInput, 0, len(specs))
	for i, s := range specs {
		inputs = append(inputs, models.ReviewInput{
			ID:       fmt.Sprintf("in-%d", i),
			Category: s[0],
			Title:    s[1],
		})
	}
	return inputs
}

func TestGroupInputsByCategory(t *testing.T) {
	inputs := makeInputs(
		[2]string{"Audit", "internal audit findings"},
		[2]string{"Complaints", "complaint trend Q1"},
		[2]string{"Audit", "supplier audit results"},
		[2]string{"", "uncategorized item"},
		[2]string{"Complaints", "complaint trend Q2"},
	)

	order, groups := groupInputsByCategory(inputs)

	assert.Equal(t, []string{"Audit", "Complaints", "General"}, order)
	assert.Len(t, groups["Audit"], 2)
	assert.Len(t, groups["Complaints"], 2)
	assert.Len(t, groups["General"], 1)

	// Partition: every input in exactly one group, sizes sum to the total.
	total := 0
	seen := make(map[string]bool)
	for _, cat := range order {
		for _, in := range groups[cat] {
			assert.False(t, seen[in.ID], "input %s appears in more than one group", in.ID)
			seen[in.ID] = true
			total++
		}
	}
	assert.Equal(t, len(inputs), total)

	// Insertion order is stable within a category.
	assert.Equal(t, "internal audit findings", groups["Audit"][0].Title)
	assert.Equal(t, "supplier audit results", groups["Audit"][1].Title)
}

func TestGroupInputsByCategoryEmpty(t *testing.T) {
	order, groups := groupInputsByCategory(nil)
	assert.Empty(t, order)
	assert.Empty(t, groups)
}

func TestCategoryLines(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantLines int
		wantMore  string
	}{
		{"Empty group", 0, 0, ""},
		{"Under cap", 2, 2, ""},
		{"At cap", 3, 3, ""},
		{"One over cap", 4, 4, "+1 more"},
		{"Well over cap", 10, 4, "+7 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.ReviewInput, tt.count)
			for i := range items {
				items[i] = models.ReviewInput{Title: fmt.Sprintf("item %d", i)}
			}

			lines := categoryLines(items)
			assert.Len(t, lines, tt.wantLines)
			if tt.wantMore != "" {
				assert.Equal(t, tt.wantMore, lines[len(lines)-1])
			} else {
				for _, line := range lines {
					assert.NotContains(t, line, "more")
				}
			}
		})
	}
}

func TestCategoryLinesTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("t", 90)
	lines := categoryLines([]models.ReviewInput{{Title: long}})
	assert.Len(t, lines, 1)
	// "- " prefix plus 60 chars plus "..."
	assert.Equal(t, "- "+strings.Repeat("t", 60)+"...", lines[0])
}

func TestComplianceAndPriorityCounts(t *testing.T) {
	inputs := []models.ReviewInput{
		{ComplianceStatus: "compliant", Priority: "high"},
		{ComplianceStatus: "non_compliant", Priority: "critical"},
		{ComplianceStatus: "compliant", Priority: "high"},
		{ComplianceStatus: "", Priority: ""},
	}

	statusOrder, statuses := complianceCounts(inputs)
	assert.Equal(t, []string{"compliant", "non_compliant", "unknown"}, statusOrder)
	assert.Equal(t, 2, statuses["compliant"])
	assert.Equal(t, 1, statuses["non_compliant"])
	assert.Equal(t, 1, statuses["unknown"])

	prioOrder, priorities := priorityCounts(inputs)
	assert.Equal(t, []string{"high", "critical", "unknown"}, prioOrder)
	assert.Equal(t, 2, priorities["high"])
	assert.Equal(t, 1, priorities["critical"])
	assert.Equal(t, 1, priorities["unknown"])

	// Counts partition the input list.
	sum := 0
	for _, k := range statusOrder {
		sum += statuses[k]
	}
	assert.Equal(t, len(inputs), sum)
}

func TestAttendanceRows(t *testing.T) {
	users := []models.User{
		{FirstName: "Ada", LastName: "Lovelace", Department: "Quality", Role: "QM"},
		{FirstName: "Grace", LastName: "Hopper", Department: "Engineering", Role: "Lead"},
	}

	rows := attendanceRows(users)
	assert.Len(t, rows, len(users)+blankAttendanceRows)
	assert.Equal(t, "Ada Lovelace", rows[0][0])
	assert.Equal(t, "Quality", rows[0][1])
	assert.Equal(t, "QM", rows[0][2])
	// Walk-in rows are blank.
	for _, row := range rows[len(users):] {
		assert.Equal(t, [3]string{}, row)
	}
}

func TestAttendanceRowsNoUsers(t *testing.T) {
	rows := attendanceRows(nil)
	assert.Len(t, rows, blankAttendanceRows)
}
