package views

// TeamMember is a row of the team overview widget.
type TeamMember struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Department   string         `json:"department"`
	Availability string         `json:"availability"`
	Performance  int            `json:"performance"`
	Strengths    []string       `json:"strengths"`
	Dimensions   map[string]int `json:"dimensions"`
	Status       string         `json:"status"`
}

// ManagedUser is a row of the user-management table. Fields pass through
// as stored, complete or not.
type ManagedUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// Account joins the account row with the company settings row.
type Account struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Plan            string `json:"plan"`
	Timezone        string `json:"timezone"`
	Currency        string `json:"currency"`
	FiscalYearStart string `json:"fiscal_year_start"`
}

// Profile is the current user's own profile page.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Bio        string `json:"bio"`
}

// NotificationCategory joins a category with the current user's preference.
type NotificationCategory struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Email       bool   `json:"email"`
	InApp       bool   `json:"in_app"`
}

// Activity is a feed entry with the actor name resolved.
type Activity struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Target    string `json:"target"`
	CreatedAt string `json:"created_at"`
}

// CrunchColumn mirrors the stored board column row.
type CrunchColumn struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Process mirrors the stored process row.
type Process struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Dashboard is the landing-page composition: three widgets composed through
// one shared user directory.
type Dashboard struct {
	Ideas    []Idea       `json:"ideas"`
	Projects []Project    `json:"projects"`
	Team     []TeamMember `json:"team"`
}
