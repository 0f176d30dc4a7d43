package models

import (
	"encoding/json"
	"strings"
)

// Idea is a submitted business idea. The risks/assumptions/alignments columns
// are structured lists stored as text by the upstream tooling; they are parsed
// defensively at composition time, not here.
type Idea struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Score         int             `json:"score"`
	Status        string          `json:"status"`
	SubmittedBy   string          `json:"submitted_by"`
	EdgeStatus    string          `json:"edge_status"`
	Problem       string          `json:"problem"`
	Solution      string          `json:"solution"`
	Outcome       string          `json:"outcome"`
	Category      string          `json:"category"`
	Readiness     string          `json:"readiness"`
	EstimatedTime string          `json:"estimated_time"`
	EstimatedCost string          `json:"estimated_cost"`
	Risks         json.RawMessage `json:"risks"`
	Assumptions   json.RawMessage `json:"assumptions"`
	Alignments    json.RawMessage `json:"alignments"`
}

// Normalize trims the title and status fields.
func (i *Idea) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Status = strings.TrimSpace(i.Status)
	i.EdgeStatus = strings.TrimSpace(i.EdgeStatus)
	i.Readiness = strings.TrimSpace(i.Readiness)
}

// IdeaScore is the authoritative scoring record computed for an idea during
// conversion review. At most one exists per idea; once present, its fields
// take precedence over the idea's own score/time/cost.
type IdeaScore struct {
	ID      string `json:"id"`
	IdeaID  string `json:"idea_id"`
	Overall int    `json:"overall"`
	Time    string `json:"time"`
	Cost    string `json:"cost"`
}
