package models

import (
	"encoding/json"
	"strings"
)

// ProjectStatus values as stored. Unknown values pass through.
const (
	ProjectApproved    = "approved"
	ProjectUnderReview = "under_review"
	ProjectSentBack    = "sent_back"
)

// Project is an executed (or executing) idea. LinkedIdeaID is optional: a
// project references at most one idea.
type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	Priority        int             `json:"priority"`
	PriorityScore   int             `json:"priority_score"`
	EstimatedTime   string          `json:"estimated_time"`
	ActualTime      string          `json:"actual_time"`
	Cost            string          `json:"cost"`
	Impact          string          `json:"impact"`
	Progress        int             `json:"progress"`
	Lead            string          `json:"lead"`
	LinkedIdeaID    string          `json:"linked_idea_id"`
	BusinessContext json.RawMessage `json:"business_context"`
}

// Normalize trims the title and status.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Status = strings.TrimSpace(p.Status)
}

// ProjectTeamMember assigns a user to a project role.
type ProjectTeamMember struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Milestone is a dated checkpoint on a project.
type Milestone struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

// ProjectTask is a unit of work on a project. Skills is a plain string list
// (stored structured, unlike the idea's text columns).
type ProjectTask struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Assignee string   `json:"assignee"`
	Status   string   `json:"status"`
	DueDate  string   `json:"due_date"`
	Skills   []string `json:"skills"`
}

// Discussion is a comment thread entry on a project.
type Discussion struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ProjectVersion is a numbered revision of the project definition.
type ProjectVersion struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// ClarificationStatus values.
const (
	ClarificationPending  = "pending"
	ClarificationAnswered = "answered"
)

// Clarification is a question raised against a project. Answer fields are
// empty until answered.
type Clarification struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	AskedBy    string `json:"asked_by"`
	AskedAt    string `json:"asked_at"`
	Status     string `json:"status"`
	Answer     string `json:"answer"`
	AnsweredBy string `json:"answered_by"`
	AnsweredAt string `json:"answered_at"`
}
