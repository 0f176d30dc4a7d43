package services

import (
	"context"
	"sync/atomic"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
)

// seedStore builds the in-memory fixture shared by the composer tests.
func seedStore() *store.Memory {
	return &store.Memory{
		UsersData: []models.User{
			{ID: "u-current", FirstName: "Me", LastName: "Myself", Department: "Product", Performance: 90},
			{ID: "u-ada", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "analyst", Department: "Analytics", Performance: 95, Status: "active"},
			{ID: "u-grace", FirstName: "Grace", LastName: "Hopper", Role: "engineer", Department: "Engineering", Performance: 88},
			{ID: "u-nodept", FirstName: "No", LastName: "Dept", Department: "", Performance: 70},
			{ID: "u-zero", FirstName: "Zero", LastName: "Perf", Department: "Sales", Performance: 0},
			{ID: "u-lin", FirstName: "Lin", LastName: "Bell", Department: "Design", Performance: 81},
			{ID: "u-omar", FirstName: "Omar", LastName: "Reyes", Department: "Ops", Performance: 77},
			{ID: "u-pat", FirstName: "Pat", LastName: "Kim", Department: "Legal", Performance: 75},
			{ID: "u-quinn", FirstName: "Quinn", LastName: "Vo", Department: "Finance", Performance: 74},
			{ID: "u-rosa", FirstName: "Rosa", LastName: "Diaz", Department: "Support", Performance: 72},
		},
		CurrentUserID: "u-current",
		IdeasData: []models.Idea{
			{ID: "i1", Title: "Faster onboarding", Score: 85, Status: "submitted", SubmittedBy: "u-ada", EdgeStatus: "draft", Readiness: "ready", Category: "growth",
				Problem: "Signup takes too long", Solution: "Guided setup", Outcome: "Higher activation",
				EstimatedTime: "8 weeks", EstimatedCost: "40k",
				Risks: []byte(`["churn during rollout"]`), Assumptions: []byte(`"[\"users want guidance\"]"`), Alignments: []byte(`not json`)},
			{ID: "i2", Title: "Partner portal", Score: 62, Status: "submitted", SubmittedBy: "u-ghost", Readiness: ""},
			{ID: "i3", Title: "Usage analytics", Score: 55, Status: "submitted", SubmittedBy: "u-grace", Readiness: "scoping"},
		},
		ScoresData: []models.IdeaScore{
			{ID: "s1", IdeaID: "i1", Overall: 91, Time: "6 weeks", Cost: "35k"},
		},
		EdgesData: []models.Edge{
			{ID: "e1", IdeaID: "i1", Owner: "u-grace", Status: "", Confidence: "", ImpactShortTerm: "fewer support tickets"},
			{ID: "e2", IdeaID: "i3", Owner: "", Status: "review", Confidence: models.ConfidenceHigh},
		},
		OutcomesData: []models.EdgeOutcome{
			{ID: "o1", EdgeID: "e1", Description: "Activation up 20%"},
			{ID: "o2", EdgeID: "e1", Description: "Support load down"},
			{ID: "o3", EdgeID: "e2", Description: "Faster decisions"},
		},
		MetricsData: []models.EdgeMetric{
			{ID: "m1", OutcomeID: "o1", Name: "activation", Target: "60", Unit: "%", Current: "48"},
			{ID: "m2", OutcomeID: "o1", Name: "time-to-value", Target: "1", Unit: "day", Current: "3"},
			{ID: "m3", OutcomeID: "o1", Name: "nps", Target: "50", Unit: "", Current: "41"},
			{ID: "m4", OutcomeID: "o3", Name: "cycle time", Target: "2", Unit: "days", Current: "5"},
		},
		ProjectsData: []models.Project{
			{ID: "p1", Title: "Onboarding revamp", Status: models.ProjectApproved, Priority: 1, PriorityScore: 88,
				EstimatedTime: "8 weeks", ActualTime: "3 weeks", Cost: "40k", Impact: "high", Progress: 35,
				Lead: "u-ada", LinkedIdeaID: "i1",
				BusinessContext: []byte(`{"problem":"slow signup","expected_outcome":"activation up","success_metrics":["activation 60%"],"constraints":["no schema changes"]}`)},
			{ID: "p2", Title: "Standalone initiative", Status: models.ProjectUnderReview, Lead: "u-grace",
				BusinessContext: []byte(`totally malformed`)},
		},
		TeamData: map[string][]models.ProjectTeamMember{
			"p1": {
				{ID: "tm1", UserID: "u-grace", Role: "tech lead"},
				{ID: "tm2", UserID: "u-ghost", Role: "reviewer"},
			},
		},
		MilestonesData: map[string][]models.Milestone{
			"p1": {{ID: "ms1", Title: "Beta", DueDate: "2026-10-01", Status: "open"}},
		},
		TasksData: map[string][]models.ProjectTask{
			"p1": {{ID: "t1", Title: "New signup flow", Assignee: "u-grace", Status: "in_progress", Skills: []string{"go", "react"}}},
		},
		DiscussionsData: map[string][]models.Discussion{
			"p1": {{ID: "d1", Author: "u-ada", Message: "Scope looks right", CreatedAt: "2026-08-01"}},
		},
		VersionsData: map[string][]models.ProjectVersion{
			"p1": {{ID: "v1", Version: "1.1", Notes: "tightened scope", CreatedAt: "2026-08-02"}},
		},
		ClarificationsData: map[string][]models.Clarification{
			"p1": {
				{ID: "c1", Question: "Which cohorts first?", AskedBy: "u-grace", AskedAt: "2026-08-03", Status: models.ClarificationPending},
				{ID: "c2", Question: "Budget ceiling?", AskedBy: "u-grace", AskedAt: "2026-08-01", Status: models.ClarificationAnswered,
					Answer: "40k all-in", AnsweredBy: "u-ada", AnsweredAt: "2026-08-02"},
			},
		},
		AccountData:  &models.Account{ID: "a1", Name: "Acme", Email: "ops@acme.test", Plan: "scale", CreatedAt: "2024-01-01"},
		SettingsData: &models.CompanySettings{Timezone: "UTC", Currency: "EUR", FiscalYearStart: "04-01"},
		CategoriesData: []models.NotificationCategory{
			{ID: "nc1", Key: "mentions", Label: "Mentions", Description: "When someone mentions you"},
			{ID: "nc2", Key: "digest", Label: "Weekly digest"},
		},
		PreferencesData: []models.NotificationPreference{
			{CategoryID: "nc1", Email: true, InApp: true},
		},
		ActivitiesData: []models.Activity{
			{ID: "act1", Actor: "u-ada", Action: "approved", Target: "p1", CreatedAt: "2026-08-20"},
			{ID: "act2", Actor: "u-ghost", Action: "commented", Target: "i1", CreatedAt: "2026-08-21"},
		},
		ColumnsData: []models.CrunchColumn{
			{ID: "cc1", Key: "backlog", Title: "Backlog", Order: 1},
			{ID: "cc2", Key: "active", Title: "Active", Order: 2},
		},
		ProcessesData: []models.Process{
			{ID: "pr1", Name: "Quarterly review", Status: "active"},
		},
	}
}

// countingUsers wraps a user store and counts collection fetches.
type countingUsers struct {
	store.UserStore
	calls atomic.Int32
}

func (c *countingUsers) Users(ctx context.Context) ([]models.User, error) {
	c.calls.Add(1)
	return c.UserStore.Users(ctx)
}

// failingStore fails selected reads; everything else delegates to the seed.
type failingStore struct {
	*store.Memory
	usersErr error
	tasksErr error
	edgesErr error
}

func (f *failingStore) Users(ctx context.Context) ([]models.User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.Memory.Users(ctx)
}

func (f *failingStore) ProjectTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.Memory.ProjectTasks(ctx, projectID)
}

func (f *failingStore) Edges(ctx context.Context) ([]models.Edge, error) {
	if f.edgesErr != nil {
		return nil, f.edgesErr
	}
	return f.Memory.Edges(ctx)
}
