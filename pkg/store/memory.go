package store

import (
	"context"
	"slices"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
)

// Memory is an in-memory EntityStore seeded from its exported fields. It backs
// the composer tests and local tooling. Reads return copies so callers can
// never mutate the seed data through a returned slice.
type Memory struct {
	UsersData     []models.User
	CurrentUserID string

	IdeasData  []models.Idea
	ScoresData []models.IdeaScore

	EdgesData    []models.Edge
	OutcomesData []models.EdgeOutcome
	MetricsData  []models.EdgeMetric

	ProjectsData       []models.Project
	TeamData           map[string][]models.ProjectTeamMember
	MilestonesData     map[string][]models.Milestone
	TasksData          map[string][]models.ProjectTask
	DiscussionsData    map[string][]models.Discussion
	VersionsData       map[string][]models.ProjectVersion
	ClarificationsData map[string][]models.Clarification

	AccountData     *models.Account
	SettingsData    *models.CompanySettings
	CategoriesData  []models.NotificationCategory
	PreferencesData []models.NotificationPreference
	ActivitiesData  []models.Activity
	ColumnsData     []models.CrunchColumn
	ProcessesData   []models.Process
}

var _ EntityStore = (*Memory)(nil)

func (m *Memory) Users(ctx context.Context) ([]models.User, error) {
	return slices.Clone(m.UsersData), nil
}

func (m *Memory) CurrentUser(ctx context.Context) (*models.User, error) {
	for _, u := range m.UsersData {
		if u.ID == m.CurrentUserID {
			row := u
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *Memory) Ideas(ctx context.Context) ([]models.Idea, error) {
	return slices.Clone(m.IdeasData), nil
}

func (m *Memory) Idea(ctx context.Context, id string) (*models.Idea, error) {
	for _, i := range m.IdeasData {
		if i.ID == id {
			row := i
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *Memory) IdeaScore(ctx context.Context, ideaID string) (*models.IdeaScore, error) {
	for _, s := range m.ScoresData {
		if s.IdeaID == ideaID {
			row := s
			return &row, nil
		}
	}
	return nil, nil
}

func (m *Memory) Edges(ctx context.Context) ([]models.Edge, error) {
	return slices.Clone(m.EdgesData), nil
}

func (m *Memory) EdgeOutcomes(ctx context.Context) ([]models.EdgeOutcome, error) {
	return slices.Clone(m.OutcomesData), nil
}

func (m *Memory) EdgeMetrics(ctx context.Context) ([]models.EdgeMetric, error) {
	return slices.Clone(m.MetricsData), nil
}

func (m *Memory) Projects(ctx context.Context) ([]models.Project, error) {
	return slices.Clone(m.ProjectsData), nil
}

func (m *Memory) Project(ctx context.Context, id string) (*models.Project, error) {
	for _, p := range m.ProjectsData {
		if p.ID == id {
			row := p
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *Memory) ProjectTeam(ctx context.Context, projectID string) ([]models.ProjectTeamMember, error) {
	return slices.Clone(m.TeamData[projectID]), nil
}

func (m *Memory) ProjectMilestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	return slices.Clone(m.MilestonesData[projectID]), nil
}

func (m *Memory) ProjectTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	return slices.Clone(m.TasksData[projectID]), nil
}

func (m *Memory) ProjectDiscussions(ctx context.Context, projectID string) ([]models.Discussion, error) {
	return slices.Clone(m.DiscussionsData[projectID]), nil
}

func (m *Memory) ProjectVersions(ctx context.Context, projectID string) ([]models.ProjectVersion, error) {
	return slices.Clone(m.VersionsData[projectID]), nil
}

func (m *Memory) ProjectClarifications(ctx context.Context, projectID string) ([]models.Clarification, error) {
	return slices.Clone(m.ClarificationsData[projectID]), nil
}

func (m *Memory) Account(ctx context.Context) (*models.Account, error) {
	if m.AccountData == nil {
		return nil, apperrors.ErrNotFound
	}
	row := *m.AccountData
	return &row, nil
}

func (m *Memory) CompanySettings(ctx context.Context) (*models.CompanySettings, error) {
	if m.SettingsData == nil {
		return nil, apperrors.ErrNotFound
	}
	row := *m.SettingsData
	return &row, nil
}

func (m *Memory) NotificationCategories(ctx context.Context) ([]models.NotificationCategory, error) {
	return slices.Clone(m.CategoriesData), nil
}

func (m *Memory) NotificationPreferences(ctx context.Context) ([]models.NotificationPreference, error) {
	return slices.Clone(m.PreferencesData), nil
}

func (m *Memory) Activities(ctx context.Context) ([]models.Activity, error) {
	return slices.Clone(m.ActivitiesData), nil
}

func (m *Memory) CrunchColumns(ctx context.Context) ([]models.CrunchColumn, error) {
	return slices.Clone(m.ColumnsData), nil
}

func (m *Memory) Processes(ctx context.Context) ([]models.Process, error) {
	return slices.Clone(m.ProcessesData), nil
}
