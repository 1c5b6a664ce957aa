package services

import (
	"testing"
	"time"

	"github.com/araad04/eqms/models"
	"github.com/stretchr/testify/assert"
)

var qualifiedAt = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

func TestRequalificationDue(t *testing.T) {
	tests := []struct {
		name        string
		criticality string
		wantYears   int
	}{
		{"Critical supplier", "critical", 1},
		{"Major supplier", "major", 2},
		{"Minor supplier", "minor", 3},
		{"Unknown criticality", "something_else", 3},
		{"Empty criticality", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := RequalificationDue(tt.criticality, qualifiedAt)
			assert.Equal(t, qualifiedAt.AddDate(tt.wantYears, 0, 0), due)
		})
	}
}

// The due date is a pure function of its two inputs: changing either one
// changes the result deterministically.
func TestRequalificationDueRecomputes(t *testing.T) {
	base := RequalificationDue("critical", qualifiedAt)

	laterBase := qualifiedAt.AddDate(0, 6, 0)
	assert.Equal(t, laterBase.AddDate(1, 0, 0), RequalificationDue("critical", laterBase))
	assert.NotEqual(t, base, RequalificationDue("critical", laterBase))

	assert.Equal(t, qualifiedAt.AddDate(2, 0, 0), RequalificationDue("major", qualifiedAt))
	assert.NotEqual(t, base, RequalificationDue("major", qualifiedAt))
}

func TestApplyRequalification(t *testing.T) {
	t.Run("Never qualified", func(t *testing.T) {
		sup := &models.Supplier{Criticality: "critical"}
		applyRequalification(sup)
		assert.Nil(t, sup.RequalificationDue)
	})

	t.Run("Qualified critical", func(t *testing.T) {
		qa := qualifiedAt
		sup := &models.Supplier{Criticality: "critical", LastQualifiedAt: &qa}
		applyRequalification(sup)
		assert.NotNil(t, sup.RequalificationDue)
		assert.Equal(t, qa.AddDate(1, 0, 0), *sup.RequalificationDue)
	})

	t.Run("Criticality change moves the due date", func(t *testing.T) {
		qa := qualifiedAt
		sup := &models.Supplier{Criticality: "critical", LastQualifiedAt: &qa}
		applyRequalification(sup)
		first := *sup.RequalificationDue

		sup.Criticality = "minor"
		applyRequalification(sup)
		assert.Equal(t, qa.AddDate(3, 0, 0), *sup.RequalificationDue)
		assert.NotEqual(t, first, *sup.RequalificationDue)
	})
}
