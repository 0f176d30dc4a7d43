package views

// EdgeListItem is a row of the edge inventory. Confidence stays absent when
// unset; only the per-idea form view (EdgeData) defaults it.
type EdgeListItem struct {
	ID            string `json:"id"`
	IdeaID        string `json:"idea_id"`
	IdeaTitle     string `json:"idea_title"`
	Status        string `json:"status"`
	Confidence    string `json:"confidence,omitempty"`
	OutcomesCount int    `json:"outcomes_count"`
	MetricsCount  int    `json:"metrics_count"`
}

// Impact is the three-horizon impact text of an edge.
type Impact struct {
	ShortTerm string `json:"short_term"`
	MidTerm   string `json:"mid_term"`
	LongTerm  string `json:"long_term"`
}

// Metric is a measure attached to an outcome.
type Metric struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Target  string `json:"target"`
	Unit    string `json:"unit"`
	Current string `json:"current"`
}

// Outcome is an edge outcome with its metrics nested.
type Outcome struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Metrics     []Metric `json:"metrics"`
}

// EdgeData is the full edge composition for one idea, with outcomes and
// metrics nested and completion derived from current data.
type EdgeData struct {
	EdgeID            string    `json:"edge_id,omitempty"`
	IdeaID            string    `json:"idea_id"`
	Owner             string    `json:"owner"`
	Status            string    `json:"status"`
	Confidence        string    `json:"confidence"`
	Impact            Impact    `json:"impact"`
	Outcomes          []Outcome `json:"outcomes"`
	CompletionPercent int       `json:"completion_percent"`
	IsComplete        bool      `json:"is_complete"`
}
