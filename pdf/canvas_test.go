package pdf

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCanvasThresholds(t *testing.T) {
	p := NewCanvas(Portrait)
	assert.Equal(t, portraitBreakAt, p.BreakThreshold())
	assert.Equal(t, 1, p.PageCount())
	assert.Equal(t, marginTop, p.Y())

	l := NewCanvas(Landscape)
	assert.Equal(t, landscapeBreakAt, l.BreakThreshold())
	assert.Greater(t, l.PageWidth(), p.PageWidth())
}

func TestEnsureSpaceBreaksBeforeOverflow(t *testing.T) {
	c := NewCanvas(Portrait)
	c.Advance(c.BreakThreshold() - marginTop - 1) // cursor just under the threshold

	c.EnsureSpace(0.5)
	assert.Equal(t, 1, c.PageCount(), "space available, no break expected")

	c.EnsureSpace(5)
	assert.Equal(t, 2, c.PageCount(), "break expected before overflow")
	assert.Equal(t, marginTop, c.Y(), "cursor resets to top margin")
}

// Pagination property: for N lines at a line height that divides the
// available page height evenly, page count equals
// ceil(totalContentHeight / availablePageHeight) and no baseline passes the
// bottom threshold.
func TestPaginationPageCount(t *testing.T) {
	const fontSize = 10.0 // line height 5; (250-20)/5 = 46 lines per page
	lh := lineHeight(fontSize)
	available := portraitBreakAt - marginTop

	for _, n := range []int{1, 45, 46, 47, 92, 93, 139} {
		t.Run(fmt.Sprintf("%d lines", n), func(t *testing.T) {
			c := NewCanvas(Portrait)
			for i := 0; i < n; i++ {
				c.WriteLine(fmt.Sprintf("line %d", i), marginX, fontSize, "")
				baseline := c.Y() - lh
				assert.LessOrEqual(t, baseline, c.BreakThreshold(),
					"baseline of line %d passed the bottom threshold", i)
			}

			wantPages := int(math.Ceil(float64(n) * lh / available))
			assert.Equal(t, wantPages, c.PageCount())
		})
	}
}

func TestWriteWrappedAdvancesPerLine(t *testing.T) {
	c := NewCanvas(Portrait)
	start := c.Y()

	long := "management review of the quality management system covering audit results, " +
		"customer feedback, process performance, product conformity and the status of " +
		"corrective and preventive actions from previous reviews"
	lines := c.WriteWrapped(long, marginX, 80, 11)

	assert.Greater(t, lines, 1, "narrow width must wrap")
	assert.InDelta(t, start+float64(lines)*lineHeight(11), c.Y(), 0.001)
}

func TestWriteWrappedShortTextSingleLine(t *testing.T) {
	c := NewCanvas(Portrait)
	lines := c.WriteWrapped("short", marginX, c.ContentWidth(), 11)
	assert.Equal(t, 1, lines)
}

func TestOutputProducesPDF(t *testing.T) {
	c := NewCanvas(Portrait)
	c.WriteLine("hello", marginX, 12, "B")

	data, err := c.Output()
	assert.NoError(t, err)
	assert.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}
