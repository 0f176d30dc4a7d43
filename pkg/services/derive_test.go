package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

func TestPriorityTierBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, PriorityHigh},
		{80, PriorityHigh},
		{79, PriorityMedium},
		{60, PriorityMedium},
		{59, PriorityLow},
		{0, PriorityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityTier(tt.score), "score %d", tt.score)
	}
}

func outcomeWithMetrics(n int) views.Outcome {
	o := views.Outcome{ID: "o"}
	for i := 0; i < n; i++ {
		o.Metrics = append(o.Metrics, views.Metric{ID: "m"})
	}
	return o
}

func TestDeriveEdgeCompletion(t *testing.T) {
	full := &models.Edge{
		ImpactShortTerm: "cuts onboarding time",
		Confidence:      models.ConfidenceHigh,
	}

	t.Run("all five signals", func(t *testing.T) {
		c := DeriveEdgeCompletion(full, []views.Outcome{outcomeWithMetrics(2)}, "Grace Hopper")
		assert.Equal(t, 100, c.Percent())
		assert.True(t, c.IsComplete())
		assert.Equal(t, EdgeStatusComplete, c.StatusLabel())
	})

	t.Run("confidence not required for completeness", func(t *testing.T) {
		e := &models.Edge{ImpactMidTerm: "steady revenue"}
		c := DeriveEdgeCompletion(e, []views.Outcome{outcomeWithMetrics(1)}, "Grace Hopper")
		// Four of five signals: 80%, but still complete.
		assert.Equal(t, 80, c.Percent())
		assert.True(t, c.IsComplete())
		assert.Equal(t, EdgeStatusComplete, c.StatusLabel())
	})

	t.Run("outcome without metrics blocks completeness", func(t *testing.T) {
		c := DeriveEdgeCompletion(full, []views.Outcome{outcomeWithMetrics(3), outcomeWithMetrics(0)}, "Grace Hopper")
		assert.False(t, c.AllOutcomesHaveMetrics)
		assert.False(t, c.IsComplete())
		assert.Equal(t, 80, c.Percent())
		assert.Equal(t, EdgeStatusDraft, c.StatusLabel())
	})

	t.Run("no outcomes means metrics signal is off too", func(t *testing.T) {
		c := DeriveEdgeCompletion(full, nil, "")
		assert.False(t, c.HasOutcomes)
		assert.False(t, c.AllOutcomesHaveMetrics)
		assert.Equal(t, 40, c.Percent()) // impact + confidence
		assert.Equal(t, EdgeStatusDraft, c.StatusLabel())
	})

	t.Run("nothing present", func(t *testing.T) {
		c := DeriveEdgeCompletion(&models.Edge{}, nil, "")
		assert.Equal(t, 0, c.Percent())
		assert.False(t, c.IsComplete())
		assert.Equal(t, EdgeStatusMissing, c.StatusLabel())
	})
}

func TestStatusOrMissing(t *testing.T) {
	assert.Equal(t, "missing", StatusOrMissing(""))
	assert.Equal(t, "draft", StatusOrMissing("draft"))
}

func TestReadinessOrIncomplete(t *testing.T) {
	assert.Equal(t, "incomplete", ReadinessOrIncomplete(""))
	assert.Equal(t, "ready", ReadinessOrIncomplete("ready"))
}

func TestConfidenceOrMedium(t *testing.T) {
	assert.Equal(t, "medium", ConfidenceOrMedium(""))
	assert.Equal(t, "low", ConfidenceOrMedium(models.ConfidenceLow))
}
