package models

// Account is the workspace-level account record (a single row).
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	CreatedAt string `json:"created_at"`
}

// CompanySettings holds workspace display settings (a single row).
type CompanySettings struct {
	Timezone        string `json:"timezone"`
	Currency        string `json:"currency"`
	FiscalYearStart string `json:"fiscal_year_start"`
}

// NotificationCategory is a kind of notification a user can subscribe to.
type NotificationCategory struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// NotificationPreference is the current user's opt-in state for a category.
type NotificationPreference struct {
	CategoryID string `json:"category_id"`
	Email      bool   `json:"email"`
	InApp      bool   `json:"in_app"`
}

// Activity is an entry in the workspace activity feed.
type Activity struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Target    string `json:"target"`
	CreatedAt string `json:"created_at"`
}

// CrunchColumn is a column of the crunch board view.
type CrunchColumn struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Process is a named delivery process configured for the workspace.
type Process struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
