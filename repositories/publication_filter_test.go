package repositories

import (
	"testing"
	"time"

	"github.com/pubsched/api-go/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

// The comparisons against "now" are deliberately asymmetric between the
// published=true and published=false branches; these cases pin the exact
// boundaries down.
func TestPublicationFilterBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	after := now.Add(-24 * time.Hour)
	atNow := &models.Publication{Date: now}
	atAfter := &models.Publication{Date: after}

	t.Run("published with after includes date equal to now", func(t *testing.T) {
		f := PublicationFilter{Published: boolPtr(true), After: &after, Now: now}
		assert.True(t, f.Matches(atNow))
		assert.False(t, f.Matches(atAfter), "date equal to after is excluded")
	})

	t.Run("unpublished with after has no upper bound", func(t *testing.T) {
		f := PublicationFilter{Published: boolPtr(false), After: &after, Now: now}
		assert.True(t, f.Matches(&models.Publication{Date: now.Add(time.Hour)}))
		assert.True(t, f.Matches(atNow))
		assert.False(t, f.Matches(atAfter))
	})

	t.Run("published alone excludes date equal to now", func(t *testing.T) {
		f := PublicationFilter{Published: boolPtr(true), Now: now}
		assert.False(t, f.Matches(atNow))
		assert.True(t, f.Matches(&models.Publication{Date: now.Add(-time.Second)}))
	})

	t.Run("unpublished alone includes date equal to now", func(t *testing.T) {
		f := PublicationFilter{Published: boolPtr(false), Now: now}
		assert.True(t, f.Matches(atNow))
		assert.False(t, f.Matches(&models.Publication{Date: now.Add(-time.Second)}))
	})

	t.Run("no filter matches everything", func(t *testing.T) {
		f := PublicationFilter{Now: now}
		assert.True(t, f.Matches(atNow))
		assert.True(t, f.Matches(atAfter))
	})
}
