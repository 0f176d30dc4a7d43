package models

import "strings"

// Confidence is the business-trust indicator on an edge. The empty string
// means the value has not been set; defaulting is a composition policy, not a
// storage concern, and deliberately differs between views.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Edge is the business-case definition behind an idea, 1:1 via IdeaID.
type Edge struct {
	ID              string     `json:"id"`
	IdeaID          string     `json:"idea_id"`
	Owner           string     `json:"owner"`
	Status          string     `json:"status"`
	Confidence      Confidence `json:"confidence"`
	ImpactShortTerm string     `json:"impact_short_term"`
	ImpactMidTerm   string     `json:"impact_mid_term"`
	ImpactLongTerm  string     `json:"impact_long_term"`
}

// Normalize collapses unrecognized confidence values to absent so composers
// never see anything outside the known set.
func (e *Edge) Normalize() {
	e.Status = strings.TrimSpace(e.Status)
	switch e.Confidence {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
	default:
		e.Confidence = ""
	}
}

// EdgeOutcome is an expected outcome of an edge; many per edge.
type EdgeOutcome struct {
	ID          string `json:"id"`
	EdgeID      string `json:"edge_id"`
	Description string `json:"description"`
}

// EdgeMetric measures an outcome; many per outcome.
type EdgeMetric struct {
	ID        string `json:"id"`
	OutcomeID string `json:"outcome_id"`
	Name      string `json:"name"`
	Target    string `json:"target"`
	Unit      string `json:"unit"`
	Current   string `json:"current"`
}
