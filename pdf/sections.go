package pdf

import (
	"fmt"

	"github.com/araad04/eqms/models"
)

const (
	// Category summaries show at most this many items, then a "+N more" line.
	maxCategoryItems = 3
	titleTruncateAt  = 60
	descTruncateAt   = 80

	// Presentations cap the action-item slide; minutes list everything.
	presentationActionCap = 8

	defaultCategory = "General"
	unknownKey      = "unknown"

	regulatoryCitation = "ISO 13485:2016 - Clause 5.6 Management Review"
)

// groupInputsByCategory partitions inputs by category in first-seen order.
// Every input lands in exactly one group; empty categories fall back to
// "General".
func groupInputsByCategory(inputs []models.ReviewInput) ([]string, map[string][]models.ReviewInput) {
	order := make([]string, 0)
	groups := make(map[string][]models.ReviewInput)
	for _, in := range inputs {
		cat := orDefault(in.Category, defaultCategory)
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], in)
	}
	return order, groups
}

// categoryLines renders one category group to text: up to maxCategoryItems
// truncated titles, then a "+N more" suffix when the group is larger.
func categoryLines(items []models.ReviewInput) []string {
	lines := make([]string, 0, maxCategoryItems+1)
	for i, item := range items {
		if i >= maxCategoryItems {
			break
		}
		lines = append(lines, "- "+Truncate(orDefault(item.Title, "Untitled input"), titleTruncateAt))
	}
	if extra := len(items) - maxCategoryItems; extra > 0 {
		lines = append(lines, fmt.Sprintf("+%d more", extra))
	}
	return lines
}

// countByField tallies occurrences of a field value, keeping keys in
// first-seen order. Missing values count under "unknown".
func countByField(inputs []models.ReviewInput, field func(models.ReviewInput) string) ([]string, map[string]int) {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, in := range inputs {
		key := orDefault(field(in), unknownKey)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	return order, counts
}

func complianceCounts(inputs []models.ReviewInput) ([]string, map[string]int) {
	return countByField(inputs, func(in models.ReviewInput) string { return in.ComplianceStatus })
}

func priorityCounts(inputs []models.ReviewInput) ([]string, map[string]int) {
	return countByField(inputs, func(in models.ReviewInput) string { return in.Priority })
}

// composeCover draws the fixed-layout title page. First page only, no
// pagination risk.
func composeCover(c *Canvas, rev models.Review) {
	c.Advance(30)
	c.WriteCentered("MANAGEMENT REVIEW", 24, "B")
	c.Advance(6)
	c.WriteCentered(orDefault(rev.Title, "Untitled Review"), 16, "")
	c.Advance(10)
	c.WriteCentered("Review Date: "+FormatDate(rev.ReviewDate, ""), 12, "")
	c.WriteCentered("Status: "+orDefault(rev.Status, "scheduled"), 12, "")
	c.WriteCentered("Type: "+orDefault(rev.ReviewType, "scheduled"), 12, "")
	c.Advance(14)
	c.WriteCentered(regulatoryCitation, 10, "I")
	c.Advance(10)
	c.WriteCentered("Quality Management System - Confidential", 9, "")
}

// composeOverview draws the purpose/scope paragraph and the headline counts.
func composeOverview(c *Canvas, rev models.Review, inputCount, actionCount int) {
	c.WriteLine("Overview", marginX, 16, "B")
	c.Advance(4)
	description := orDefault(rev.Description, "No description provided for this review.")
	c.WriteWrapped(description, marginX, c.ContentWidth(), 11)
	c.Advance(6)
	c.WriteLine(fmt.Sprintf("Review Inputs: %d", inputCount), marginX, 11, "")
	c.WriteLine(fmt.Sprintf("Action Items: %d", actionCount), marginX, 11, "")
	c.WriteLine("Review Type: "+orDefault(rev.ReviewType, "scheduled"), marginX, 11, "")
}

// composeCategorySummary draws each category group with its capped item
// list. The space check at the top of the loop breaks the page before a
// header would land too close to the bottom.
func composeCategorySummary(c *Canvas, inputs []models.ReviewInput) {
	c.WriteLine("Review Inputs by Category", marginX, 16, "B")
	c.Advance(4)

	if len(inputs) == 0 {
		c.WriteLine("No review inputs recorded.", marginX, 11, "I")
		return
	}

	order, groups := groupInputsByCategory(inputs)
	for _, cat := range order {
		items := groups[cat]
		c.EnsureSpace(20)
		c.WriteLine(fmt.Sprintf("%s (%d)", cat, len(items)), marginX, 13, "B")
		for _, line := range categoryLines(items) {
			c.WriteLine(line, marginX+4, 11, "")
		}
		c.Advance(4)
	}
}

// composeAggregateStats draws the compliance-status and priority frequency
// tables as bullet lines.
func composeAggregateStats(c *Canvas, inputs []models.ReviewInput) {
	c.WriteLine("Input Statistics", marginX, 16, "B")
	c.Advance(4)

	c.WriteLine("Compliance Status", marginX, 13, "B")
	statusOrder, statuses := complianceCounts(inputs)
	if len(statusOrder) == 0 {
		c.WriteLine("- no data", marginX+4, 11, "")
	}
	for _, key := range statusOrder {
		c.WriteLine(fmt.Sprintf("- %s: %d", key, statuses[key]), marginX+4, 11, "")
	}

	c.Advance(4)
	c.WriteLine("Priority", marginX, 13, "B")
	prioOrder, priorities := priorityCounts(inputs)
	if len(prioOrder) == 0 {
		c.WriteLine("- no data", marginX+4, 11, "")
	}
	for _, key := range prioOrder {
		c.WriteLine(fmt.Sprintf("- %s: %d", key, priorities[key]), marginX+4, 11, "")
	}
}

// composeActionItems lists action items in array order. A limit <= 0 means
// list everything (minutes); presentations pass presentationActionCap.
func composeActionItems(c *Canvas, items []models.ActionItem, limit int) {
	c.WriteLine("Action Items", marginX, 16, "B")
	c.Advance(4)

	if len(items) == 0 {
		c.WriteLine("No action items recorded.", marginX, 11, "I")
		return
	}

	for i, item := range items {
		if limit > 0 && i >= limit {
			c.WriteLine(fmt.Sprintf("+%d more action items (see minutes)", len(items)-limit), marginX, 10, "I")
			break
		}
		c.EnsureSpace(18)
		c.WriteLine(fmt.Sprintf("%d. %s", i+1, orDefault(item.Title, "Untitled action")), marginX, 12, "B")
		if item.Description != "" {
			c.WriteWrapped(Truncate(item.Description, descTruncateAt), marginX+4, c.ContentWidth()-4, 10)
		}
		meta := fmt.Sprintf("Priority: %s | Due: %s | Assigned: %s",
			orDefault(item.Priority, "medium"),
			FormatDate(item.DueDate, "2006-01-02"),
			orDefault(item.AssignedTo, "Unassigned"))
		c.WriteLine(meta, marginX+4, 9, "I")
		c.Advance(3)
	}
}

// composeConclusion draws the free-text conclusion followed by the three
// signature lines for manual signing.
func composeConclusion(c *Canvas, rev models.Review) {
	c.WriteLine("Conclusion", marginX, 16, "B")
	c.Advance(4)
	conclusion := orDefault(rev.Conclusion, "Conclusion pending - to be completed during the review meeting.")
	c.WriteWrapped(conclusion, marginX, c.ContentWidth(), 11)
	c.Advance(14)

	for _, role := range []string{"Quality Manager", "Top Management", "Regulatory Affairs"} {
		c.EnsureSpace(14)
		c.WriteLine("_________________________", marginX, 11, "")
		c.WriteLine(role+" / Date", marginX, 9, "")
		c.Advance(6)
	}
}

// composeAttendees lists the known attendees in the minutes.
func composeAttendees(c *Canvas, users []models.User) {
	c.WriteLine("ATTENDEES", marginX, 14, "B")
	c.Advance(3)
	if len(users) == 0 {
		c.WriteLine("No attendees registered.", marginX, 11, "I")
		return
	}
	for _, u := range users {
		line := fmt.Sprintf("- %s (%s, %s)",
			orDefault(u.FullName(), "Unnamed attendee"),
			orDefault(u.Department, "N/A"),
			orDefault(u.Role, "N/A"))
		c.WriteLine(line, marginX+4, 11, "")
	}
}
