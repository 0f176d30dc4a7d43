// Package store defines the boundary to the external entity store: a set of
// read-only, collection-addressed interfaces, an HTTP client implementing them
// against the store's JSON API, and an in-memory implementation for tests and
// local tooling.
//
// Rows are validated and normalized exactly once here, at decode time, so the
// composers downstream operate on guaranteed-shaped data.
package store

import (
	"context"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
)

// Collection names understood by the store. They double as the Collection
// field of apperrors.UpstreamError.
const (
	ColUsers                   = "users"
	ColCurrentUser             = "current-user"
	ColIdeas                   = "ideas"
	ColIdeaScore               = "ideas/{id}/score"
	ColEdges                   = "edges"
	ColEdgeOutcomes            = "edge-outcomes"
	ColEdgeMetrics             = "edge-metrics"
	ColProjects                = "projects"
	ColProjectTeam             = "projects/{id}/team"
	ColProjectMilestones       = "projects/{id}/milestones"
	ColProjectTasks            = "projects/{id}/tasks"
	ColProjectDiscussions      = "projects/{id}/discussions"
	ColProjectVersions         = "projects/{id}/versions"
	ColProjectClarifications   = "projects/{id}/clarifications"
	ColAccount                 = "account"
	ColCompanySettings         = "company-settings"
	ColNotificationCategories  = "notification-categories"
	ColNotificationPreferences = "notification-preferences"
	ColActivities              = "activities"
	ColCrunchColumns           = "crunch-columns"
	ColProcesses               = "processes"
)

// UserStore reads the user collection and the current-user row.
type UserStore interface {
	Users(ctx context.Context) ([]models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// IdeaStore reads ideas and their optional scoring records.
type IdeaStore interface {
	Ideas(ctx context.Context) ([]models.Idea, error)
	// Idea returns apperrors.ErrNotFound when no idea has the given id.
	Idea(ctx context.Context, id string) (*models.Idea, error)
	// IdeaScore returns (nil, nil) when the idea has no scoring record.
	IdeaScore(ctx context.Context, ideaID string) (*models.IdeaScore, error)
}

// EdgeStore reads the edge collections. Edges are addressed as whole
// collections; per-idea lookup is a composition concern.
type EdgeStore interface {
	Edges(ctx context.Context) ([]models.Edge, error)
	EdgeOutcomes(ctx context.Context) ([]models.EdgeOutcome, error)
	EdgeMetrics(ctx context.Context) ([]models.EdgeMetric, error)
}

// ProjectStore reads projects and their sub-collections.
type ProjectStore interface {
	Projects(ctx context.Context) ([]models.Project, error)
	// Project returns apperrors.ErrNotFound when no project has the given id.
	Project(ctx context.Context, id string) (*models.Project, error)
	ProjectTeam(ctx context.Context, projectID string) ([]models.ProjectTeamMember, error)
	ProjectMilestones(ctx context.Context, projectID string) ([]models.Milestone, error)
	ProjectTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error)
	ProjectDiscussions(ctx context.Context, projectID string) ([]models.Discussion, error)
	ProjectVersions(ctx context.Context, projectID string) ([]models.ProjectVersion, error)
	ProjectClarifications(ctx context.Context, projectID string) ([]models.Clarification, error)
}

// WorkspaceStore reads the workspace-level lookups.
type WorkspaceStore interface {
	Account(ctx context.Context) (*models.Account, error)
	CompanySettings(ctx context.Context) (*models.CompanySettings, error)
	NotificationCategories(ctx context.Context) ([]models.NotificationCategory, error)
	NotificationPreferences(ctx context.Context) ([]models.NotificationPreference, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	CrunchColumns(ctx context.Context) ([]models.CrunchColumn, error)
	Processes(ctx context.Context) ([]models.Process, error)
}

// EntityStore is the full read surface of the external store.
type EntityStore interface {
	UserStore
	IdeaStore
	EdgeStore
	ProjectStore
	WorkspaceStore
}
