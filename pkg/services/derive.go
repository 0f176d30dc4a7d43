package services

import (
	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// Priority tiers derived from an idea's score.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriorityTier maps a 0-100 score to its tier. This is the single definition
// of the thresholds; composers must not restate them.
func PriorityTier(score int) string {
	switch {
	case score >= 80:
		return PriorityHigh
	case score >= 60:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Edge status labels derived from completion signals.
const (
	EdgeStatusComplete = "complete"
	EdgeStatusDraft    = "draft"
	EdgeStatusMissing  = "missing"
)

// EdgeCompletion captures the five signals an edge needs. It is always
// computed from current data, never stored.
type EdgeCompletion struct {
	HasOutcomes            bool
	AllOutcomesHaveMetrics bool
	HasImpact              bool
	HasOwner               bool
	HasConfidence          bool
}

// DeriveEdgeCompletion computes the completion signals for an edge from its
// composed outcomes and resolved owner name.
func DeriveEdgeCompletion(e *models.Edge, outcomes []views.Outcome, ownerName string) EdgeCompletion {
	c := EdgeCompletion{
		HasOutcomes:   len(outcomes) > 0,
		HasImpact:     e.ImpactShortTerm != "" || e.ImpactMidTerm != "" || e.ImpactLongTerm != "",
		HasOwner:      ownerName != "",
		HasConfidence: e.Confidence != "",
	}
	if c.HasOutcomes {
		c.AllOutcomesHaveMetrics = true
		for _, o := range outcomes {
			if len(o.Metrics) == 0 {
				c.AllOutcomesHaveMetrics = false
				break
			}
		}
	}
	return c
}

// Percent is 20 points per present signal (0, 20, ... 100).
func (c EdgeCompletion) Percent() int {
	count := 0
	for _, signal := range []bool{c.HasOutcomes, c.AllOutcomesHaveMetrics, c.HasImpact, c.HasOwner, c.HasConfidence} {
		if signal {
			count++
		}
	}
	return 20 * count
}

// IsComplete requires every signal except confidence: confidence counts
// toward the percentage but is not required for completeness.
func (c EdgeCompletion) IsComplete() bool {
	return c.HasOutcomes && c.AllOutcomesHaveMetrics && c.HasImpact && c.HasOwner
}

// StatusLabel is complete when the edge is complete, draft when any signal is
// present, missing otherwise.
func (c EdgeCompletion) StatusLabel() string {
	switch {
	case c.IsComplete():
		return EdgeStatusComplete
	case c.HasOutcomes || c.AllOutcomesHaveMetrics || c.HasImpact || c.HasOwner || c.HasConfidence:
		return EdgeStatusDraft
	default:
		return EdgeStatusMissing
	}
}

// StatusOrMissing substitutes the missing label for an empty stored status.
func StatusOrMissing(status string) string {
	if status == "" {
		return EdgeStatusMissing
	}
	return status
}

// ReadinessOrIncomplete substitutes "incomplete" for an empty readiness.
func ReadinessOrIncomplete(readiness string) string {
	if readiness == "" {
		return "incomplete"
	}
	return readiness
}

// ConfidenceOrMedium defaults an unset confidence to medium. Used only by the
// per-idea form composition (EdgeDataWithConfidence); the edge list leaves
// unset confidence absent. The two surfaces serve different UI needs and the
// divergence is deliberate.
func ConfidenceOrMedium(c models.Confidence) string {
	if c == "" {
		return string(models.ConfidenceMedium)
	}
	return string(c)
}
