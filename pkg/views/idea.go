// Package views defines the denormalized, read-only view models handed to the
// presentation layer. These shapes are the sole contract with the UI; nothing
// else crosses that boundary. All fields are plain data; nothing resolves
// lazily.
package views

// Idea is the idea-list row: passthrough fields plus the resolved submitter
// display name.
type Idea struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Status      string `json:"status"`
	EdgeStatus  string `json:"edge_status"`
	Category    string `json:"category"`
	Readiness   string `json:"readiness"`
	SubmittedBy string `json:"submitted_by"`
}

// ReviewIdea is a row in the review queue: ideas with a readiness assessment,
// tagged with their priority tier.
type ReviewIdea struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Score      int    `json:"score"`
	Priority   string `json:"priority"`
	EdgeStatus string `json:"edge_status"`
	Readiness  string `json:"readiness"`
	Category   string `json:"category"`
}

// ConversionIdea feeds the idea-to-project conversion form. Score, time and
// cost come from the scoring record when one exists, otherwise from the idea
// itself.
type ConversionIdea struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Outcome  string `json:"outcome"`
	Category string `json:"category"`
	Score    int    `json:"score"`
	Time     string `json:"time"`
	Cost     string `json:"cost"`
	Scored   bool   `json:"scored"`
}

// ApprovalIdea feeds the approval dialog; the stored risk/assumption/alignment
// text columns are parsed into lists, empty on parse failure.
type ApprovalIdea struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	SubmittedBy string   `json:"submitted_by"`
	Problem     string   `json:"problem"`
	Solution    string   `json:"solution"`
	Outcome     string   `json:"outcome"`
	Risks       []string `json:"risks"`
	Assumptions []string `json:"assumptions"`
	Alignments  []string `json:"alignments"`
}
