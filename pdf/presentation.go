package pdf

import (
	"fmt"
	"time"

	"github.com/araad04/eqms/models"
)

// BuildPresentation renders the landscape slide deck for a management
// review: cover, overview, category summaries, statistics, action items
// (capped), conclusion. Serialization happens only after every section has
// been composed.
func BuildPresentation(rev models.Review, inputs []models.ReviewInput, actions []models.ActionItem) (*Artifact, error) {
	c := NewCanvas(Landscape)

	composeCover(c, rev)

	c.NewPage()
	composeOverview(c, rev, len(inputs), len(actions))

	c.NewPage()
	composeCategorySummary(c, inputs)

	c.NewPage()
	composeAggregateStats(c, inputs)

	c.NewPage()
	composeActionItems(c, actions, presentationActionCap)

	c.NewPage()
	composeConclusion(c, rev)

	data, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to build presentation for review %s: %w", rev.ID, err)
	}

	return &Artifact{
		Kind:     KindPresentation,
		Filename: reportFilename(KindPresentation, rev.ID, time.Now()),
		Bytes:    data,
		Pages:    c.PageCount(),
	}, nil
}
