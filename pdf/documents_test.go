package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/araad04/eqms/models"
	"github.com/stretchr/testify/assert"
)

// FixedTime is used to patch time.Now in tests.
var FixedTime = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

func TestBuildMinutesEmptyReview(t *testing.T) {
	// Review with no description, conclusion, inputs or actions must still
	// produce a complete minutes document.
	rev := models.Review{ID: "rev-empty", Title: "Q1 Management Review"}

	artifact, err := BuildMinutes(rev, nil, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, KindMinutes, artifact.Kind)
	assert.GreaterOrEqual(t, artifact.Pages, 1)
	assert.True(t, strings.HasPrefix(string(artifact.Bytes[:4]), "%PDF"))
	assert.True(t, strings.HasPrefix(artifact.Filename, "Management_Review_Minutes_rev-empty_"))
	assert.True(t, strings.HasSuffix(artifact.Filename, ".pdf"))
}

func TestBuildPresentationTwoCategories(t *testing.T) {
	rev := models.Review{ID: "rev-5", Title: "Annual Review", Description: "Scope of the annual review."}
	inputs := makeInputs(
		[2]string{"Audit", "finding one"},
		[2]string{"Audit", "finding two"},
		[2]string{"Audit", "finding three"},
		[2]string{"Complaints", "complaint one"},
		[2]string{"Complaints", "complaint two"},
	)

	// Neither group exceeds the cap, so no "+N more" lines are produced.
	order, groups := groupInputsByCategory(inputs)
	assert.Len(t, order, 2)
	for _, cat := range order {
		for _, line := range categoryLines(groups[cat]) {
			assert.NotContains(t, line, "more")
		}
	}

	artifact, err := BuildPresentation(rev, inputs, nil)
	assert.NoError(t, err)
	assert.Equal(t, 6, artifact.Pages, "cover plus five section slides")
}

func TestBuildPresentationCapsActionItems(t *testing.T) {
	rev := models.Review{ID: "rev-acts", Title: "Review"}
	actions := make([]models.ActionItem, 12)
	for i := range actions {
		actions[i] = models.ActionItem{Title: "action", Priority: "high"}
	}

	artifact, err := BuildPresentation(rev, nil, actions)
	assert.NoError(t, err)
	assert.NotNil(t, artifact)
}

func TestBuildMinutesFilenameDeterministic(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time {
		return FixedTime
	})
	defer patches.Reset()

	rev := models.Review{ID: "rev-123", Title: "Review"}
	artifact, err := BuildMinutes(rev, nil, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Management_Review_Minutes_rev-123_2025-03-05.pdf", artifact.Filename)
}

func TestBuildAttendanceSheet(t *testing.T) {
	rev := models.Review{ID: "rev-att", Title: "Review", ReviewDate: &FixedTime}
	users := []models.User{
		{FirstName: "Ada", LastName: "Lovelace", Department: "Quality", Role: "QM"},
		{FirstName: "Grace", LastName: "Hopper", Department: "Engineering", Role: "Lead"},
		{FirstName: "Alan", LastName: "Turing", Department: "R&D", Role: "Engineer"},
	}

	artifact, err := BuildAttendanceSheet(rev, users)
	assert.NoError(t, err)
	assert.Equal(t, KindAttendance, artifact.Kind)
	assert.Equal(t, "%PDF", string(artifact.Bytes[:4]))
}

func TestComposeAttendanceRowsAllFit(t *testing.T) {
	c := NewCanvas(Portrait)
	users := make([]models.User, 3)
	for i := range users {
		users[i] = models.User{FirstName: "User", LastName: "X"}
	}

	drawn := composeAttendanceRows(c, attendanceRows(users))
	assert.Equal(t, len(users)+blankAttendanceRows, drawn)
	assert.Equal(t, 1, c.PageCount())
}

func TestComposeAttendanceRowsSoftCutoff(t *testing.T) {
	c := NewCanvas(Portrait)

	// Far more rows than a page holds. Starting at the top margin with a
	// 10-unit row height, rows begin at 20, 30, ... and emission stops at
	// the first row starting past 250: rows 0..23 are drawn.
	rows := make([][3]string, 40)
	drawn := composeAttendanceRows(c, rows)

	assert.Equal(t, 24, drawn)
	// Soft cap: no page break is forced.
	assert.Equal(t, 1, c.PageCount())
}

func TestReportFilename(t *testing.T) {
	got := reportFilename(KindPresentation, "abc", FixedTime)
	assert.Equal(t, "Management_Review_Presentation_abc_2025-03-05.pdf", got)
}
