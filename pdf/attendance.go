package pdf

import (
	"fmt"
	"time"

	"github.com/araad04/eqms/models"
)

const (
	// Blank rows appended after the known attendees, for walk-ins.
	blankAttendanceRows = 10

	attendanceRowHeight = 10.0

	// Soft cutoff for row emission. Rows stop once the cursor passes this
	// threshold; no page break is forced. Known soft limit: blank rows are
	// low priority and may be truncated on a crowded sheet.
	attendanceSoftCutoff = 250.0
)

// Fixed column layout: Name, Department, Role, Signature.
var attendanceColumns = []struct {
	Header string
	Width  float64
}{
	{"Name", 60},
	{"Department", 40},
	{"Role", 40},
	{"Signature", 40},
}

// BuildAttendanceSheet renders the portrait sign-in sheet: review header
// and a fixed 4-column table with one row per known user plus blank rows
// for walk-in attendees.
func BuildAttendanceSheet(rev models.Review, users []models.User) (*Artifact, error) {
	c := NewCanvas(Portrait)

	c.WriteCentered("MANAGEMENT REVIEW ATTENDANCE", 18, "B")
	c.Advance(4)
	c.WriteCentered(orDefault(rev.Title, "Untitled Review"), 12, "")
	c.WriteCentered("Date: "+FormatDate(rev.ReviewDate, ""), 11, "")
	c.Advance(10)

	composeAttendanceHeader(c)
	composeAttendanceRows(c, attendanceRows(users))

	data, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance sheet for review %s: %w", rev.ID, err)
	}

	return &Artifact{
		Kind:     KindAttendance,
		Filename: reportFilename(KindAttendance, rev.ID, time.Now()),
		Bytes:    data,
		Pages:    c.PageCount(),
	}, nil
}

// attendanceRows builds the (name, department, role) cell content: one row
// per known user in order, then blankAttendanceRows empty rows.
func attendanceRows(users []models.User) [][3]string {
	rows := make([][3]string, 0, len(users)+blankAttendanceRows)
	for _, u := range users {
		rows = append(rows, [3]string{u.FullName(), u.Department, u.Role})
	}
	for i := 0; i < blankAttendanceRows; i++ {
		rows = append(rows, [3]string{})
	}
	return rows
}

func composeAttendanceHeader(c *Canvas) {
	x := marginX
	for _, col := range attendanceColumns {
		c.doc.SetFont(fontFamily, "B", 11)
		c.doc.Text(x, c.y, col.Header)
		x += col.Width
	}
	c.Advance(2)
	c.Rule(marginX, marginX+tableWidth(), 4)
}

// composeAttendanceRows emits rows until the list is exhausted or the
// cursor passes the soft cutoff, and returns the number of rows drawn.
// Deliberately no page break here (see attendanceSoftCutoff).
func composeAttendanceRows(c *Canvas, rows [][3]string) int {
	drawn := 0
	for _, row := range rows {
		if c.y > attendanceSoftCutoff {
			break
		}
		x := marginX
		c.doc.SetFont(fontFamily, "", 10)
		for i, cell := range row {
			if cell != "" {
				c.doc.Text(x, c.y, cell)
			}
			x += attendanceColumns[i].Width
		}
		// Signature cell stays blank; the row rule doubles as the signing line.
		c.Advance(2)
		c.Rule(marginX, marginX+tableWidth(), attendanceRowHeight-2)
		drawn++
	}
	return drawn
}

func tableWidth() float64 {
	w := 0.0
	for _, col := range attendanceColumns {
		w += col.Width
	}
	return w
}
