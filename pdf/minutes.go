package pdf

import (
	"fmt"
	"time"

	"github.com/araad04/eqms/models"
)

// BuildMinutes renders the portrait minutes document: meeting details,
// attendees, inputs by category, statistics, the full action-item list and
// the signed conclusion. Unlike the presentation, sections flow on the same
// page and rely on the cursor for page breaks.
func BuildMinutes(rev models.Review, inputs []models.ReviewInput, actions []models.ActionItem, attendees []models.User) (*Artifact, error) {
	c := NewCanvas(Portrait)

	c.WriteCentered("MANAGEMENT REVIEW MINUTES", 18, "B")
	c.Advance(2)
	c.WriteCentered(regulatoryCitation, 9, "I")
	c.Advance(8)

	composeMeetingDetails(c, rev)
	c.Advance(8)

	composeAttendees(c, attendees)
	c.Advance(8)

	composeCategorySummary(c, inputs)
	c.Advance(8)

	composeAggregateStats(c, inputs)
	c.Advance(8)

	// Minutes list every action item; no cap.
	composeActionItems(c, actions, 0)
	c.Advance(8)

	composeConclusion(c, rev)

	data, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to build minutes for review %s: %w", rev.ID, err)
	}

	return &Artifact{
		Kind:     KindMinutes,
		Filename: reportFilename(KindMinutes, rev.ID, time.Now()),
		Bytes:    data,
		Pages:    c.PageCount(),
	}, nil
}

// composeMeetingDetails draws the header block of the minutes.
func composeMeetingDetails(c *Canvas, rev models.Review) {
	c.WriteLine("Meeting Details", marginX, 14, "B")
	c.Advance(3)
	c.WriteLine("Review: "+orDefault(rev.Title, "Untitled Review"), marginX, 11, "")
	c.WriteLine("Date: "+FormatDate(rev.ReviewDate, ""), marginX, 11, "")
	c.WriteLine("Type: "+orDefault(rev.ReviewType, "scheduled"), marginX, 11, "")
	c.WriteLine("Status: "+orDefault(rev.Status, "scheduled"), marginX, 11, "")
	if rev.ScheduledBy != "" {
		c.WriteLine("Scheduled by: "+rev.ScheduledBy, marginX, 11, "")
	}
}
