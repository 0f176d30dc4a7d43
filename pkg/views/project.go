package views

// Project is the flat project-list row; a passthrough of the stored fields
// with no joins.
type Project struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	Priority      int    `json:"priority"`
	PriorityScore int    `json:"priority_score"`
	EstimatedTime string `json:"estimated_time"`
	ActualTime    string `json:"actual_time"`
	Cost          string `json:"cost"`
	Impact        string `json:"impact"`
	Progress      int    `json:"progress"`
	Lead          string `json:"lead"`
	LinkedIdeaID  string `json:"linked_idea_id,omitempty"`
}

// TeamMemberRef is a project team assignment with the user name resolved.
type TeamMemberRef struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Milestone mirrors the stored milestone row.
type Milestone struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

// Task is a project task with the assignee name resolved.
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	AssigneeName string   `json:"assignee_name"`
	Status       string   `json:"status"`
	DueDate      string   `json:"due_date"`
	Skills       []string `json:"skills"`
}

// Discussion is a project discussion entry with the author name resolved.
type Discussion struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Version mirrors the stored project version row.
type Version struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// ProjectDetail is the full project page composition.
type ProjectDetail struct {
	Project     Project         `json:"project"`
	LeadName    string          `json:"lead_name"`
	Team        []TeamMemberRef `json:"team"`
	Milestones  []Milestone     `json:"milestones"`
	Tasks       []Task          `json:"tasks"`
	Discussions []Discussion    `json:"discussions"`
	Versions    []Version       `json:"versions"`
	Edge        EdgeData        `json:"edge"`
}

// EngineeringProject feeds the engineering handoff page. The business-context
// fields are parsed defensively with independent per-field defaults; Idea is
// present only when the project links an idea.
type EngineeringProject struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Progress        int      `json:"progress"`
	Problem         string   `json:"problem"`
	ExpectedOutcome string   `json:"expected_outcome"`
	SuccessMetrics  []string `json:"success_metrics"`
	Constraints     []string `json:"constraints"`
	Idea            *Idea    `json:"idea,omitempty"`
}

// Clarification is a project clarification with asker/answerer names resolved.
// Answer fields are emitted only when the question has actually been answered;
// they are never empty placeholders.
type Clarification struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	AskedBy    string `json:"asked_by"`
	AskedAt    string `json:"asked_at"`
	Status     string `json:"status"`
	Answer     string `json:"answer,omitempty"`
	AnsweredBy string `json:"answered_by,omitempty"`
	AnsweredAt string `json:"answered_at,omitempty"`
}
