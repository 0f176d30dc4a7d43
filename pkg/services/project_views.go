package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/jsonutil"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// ProjectViewService composes the project pages.
type ProjectViewService interface {
	// ListProjects is a flat passthrough of the project collection.
	ListProjects(ctx context.Context) ([]views.Project, error)
	// ComposeProjects is ListProjects over rows the caller already holds.
	ComposeProjects(raw []models.Project) []views.Project
	// ProjectDetail fans out to every sub-collection of one project plus the
	// nested edge composition and assembles the full page model. All reads
	// share one user directory; any failed read aborts the composition.
	ProjectDetail(ctx context.Context, id string) (*views.ProjectDetail, error)
	// ProjectForEngineering parses the stored business-context block with
	// independent per-field defaults and joins the linked idea when present.
	ProjectForEngineering(ctx context.Context, id string) (*views.EngineeringProject, error)
	// Clarifications joins each clarification with asker and answerer names.
	// Answer fields are populated only when actually answered.
	Clarifications(ctx context.Context, projectID string, dir *UserDirectory) ([]views.Clarification, error)
}

type projectViewService struct {
	projects store.ProjectStore
	ideas    store.IdeaStore
	users    store.UserStore
	edges    EdgeViewService
	logger   *zap.Logger
}

// NewProjectViewService creates the project composer. The edge composer is
// injected because the project page nests a full edge composition.
func NewProjectViewService(projects store.ProjectStore, ideas store.IdeaStore, users store.UserStore, edges EdgeViewService, logger *zap.Logger) ProjectViewService {
	return &projectViewService{
		projects: projects,
		ideas:    ideas,
		users:    users,
		edges:    edges,
		logger:   logger.Named("project-views"),
	}
}

var _ ProjectViewService = (*projectViewService)(nil)

func composeProject(p models.Project) views.Project {
	return views.Project{
		ID:            p.ID,
		Title:         p.Title,
		Status:        p.Status,
		Priority:      p.Priority,
		PriorityScore: p.PriorityScore,
		EstimatedTime: p.EstimatedTime,
		ActualTime:    p.ActualTime,
		Cost:          p.Cost,
		Impact:        p.Impact,
		Progress:      p.Progress,
		Lead:          p.Lead,
		LinkedIdeaID:  p.LinkedIdeaID,
	}
}

func (s *projectViewService) ListProjects(ctx context.Context) ([]views.Project, error) {
	raw, err := s.projects.Projects(ctx)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}
	return s.ComposeProjects(raw), nil
}

func (s *projectViewService) ComposeProjects(raw []models.Project) []views.Project {
	out := make([]views.Project, 0, len(raw))
	for _, p := range raw {
		out = append(out, composeProject(p))
	}
	return out
}

func (s *projectViewService) ProjectDetail(ctx context.Context, id string) (*views.ProjectDetail, error) {
	p, err := s.projects.Project(ctx, id)
	if err != nil {
		return nil, err
	}

	// One directory for every name-resolving sub-join of this page.
	dir := NewUserDirectory(s.users, s.logger)

	// The nested edge composition keys on the linked idea, falling back to
	// the project's own id when no idea is linked.
	ideaKey := p.LinkedIdeaID
	if ideaKey == "" {
		ideaKey = p.ID
	}

	var (
		leadName    string
		team        []models.ProjectTeamMember
		milestones  []models.Milestone
		tasks       []models.ProjectTask
		discussions []models.Discussion
		versions    []models.ProjectVersion
		edgeData    *views.EdgeData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leadName, err = dir.Resolve(gctx, p.Lead)
		return err
	})
	g.Go(func() error {
		var err error
		team, err = s.projects.ProjectTeam(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		milestones, err = s.projects.ProjectMilestones(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.projects.ProjectTasks(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		discussions, err = s.projects.ProjectDiscussions(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		versions, err = s.projects.ProjectVersions(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		edgeData, err = s.edges.EdgeDataWithConfidence(gctx, ideaKey, dir)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Project detail composition aborted",
			zap.String("project_id", id),
			zap.Error(err))
		return nil, err
	}

	detail := &views.ProjectDetail{
		Project:     composeProject(*p),
		LeadName:    leadName,
		Team:        make([]views.TeamMemberRef, 0, len(team)),
		Milestones:  make([]views.Milestone, 0, len(milestones)),
		Tasks:       make([]views.Task, 0, len(tasks)),
		Discussions: make([]views.Discussion, 0, len(discussions)),
		Versions:    make([]views.Version, 0, len(versions)),
		Edge:        *edgeData,
	}

	for _, m := range team {
		name, err := dir.Resolve(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		detail.Team = append(detail.Team, views.TeamMemberRef{
			UserID: m.UserID,
			Name:   name,
			Role:   m.Role,
		})
	}
	for _, m := range milestones {
		detail.Milestones = append(detail.Milestones, views.Milestone{
			ID:      m.ID,
			Title:   m.Title,
			DueDate: m.DueDate,
			Status:  m.Status,
		})
	}
	for _, task := range tasks {
		name, err := dir.Resolve(ctx, task.Assignee)
		if err != nil {
			return nil, err
		}
		detail.Tasks = append(detail.Tasks, views.Task{
			ID:           task.ID,
			Title:        task.Title,
			AssigneeName: name,
			Status:       task.Status,
			DueDate:      task.DueDate,
			Skills:       task.Skills,
		})
	}
	for _, d := range discussions {
		name, err := dir.Resolve(ctx, d.Author)
		if err != nil {
			return nil, err
		}
		detail.Discussions = append(detail.Discussions, views.Discussion{
			ID:        d.ID,
			Author:    name,
			Message:   d.Message,
			CreatedAt: d.CreatedAt,
		})
	}
	for _, v := range versions {
		detail.Versions = append(detail.Versions, views.Version{
			ID:        v.ID,
			Version:   v.Version,
			Notes:     v.Notes,
			CreatedAt: v.CreatedAt,
		})
	}

	return detail, nil
}

func (s *projectViewService) ProjectForEngineering(ctx context.Context, id string) (*views.EngineeringProject, error) {
	p, err := s.projects.Project(ctx, id)
	if err != nil {
		return nil, err
	}

	// Each business-context field defaults independently; a malformed block
	// loses nothing but its unparseable fields.
	fields := jsonutil.FieldsOrNil(p.BusinessContext)

	out := &views.EngineeringProject{
		ID:              p.ID,
		Title:           p.Title,
		Status:          p.Status,
		Progress:        p.Progress,
		Problem:         jsonutil.StringOrDefault(fields["problem"], ""),
		ExpectedOutcome: jsonutil.StringOrDefault(fields["expected_outcome"], ""),
		SuccessMetrics:  jsonutil.StringListOrDefault(fields["success_metrics"], []string{}),
		Constraints:     jsonutil.StringListOrDefault(fields["constraints"], []string{}),
	}

	// Optional join: only fetch the linked idea when one is referenced, and
	// tolerate it having been deleted since.
	if p.LinkedIdeaID != "" {
		idea, err := s.ideas.Idea(ctx, p.LinkedIdeaID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			submitter, err := NewUserDirectory(s.users, s.logger).Resolve(ctx, idea.SubmittedBy)
			if err != nil {
				return nil, err
			}
			out.Idea = &views.Idea{
				ID:          idea.ID,
				Title:       idea.Title,
				Score:       idea.Score,
				Status:      idea.Status,
				EdgeStatus:  idea.EdgeStatus,
				Category:    idea.Category,
				Readiness:   idea.Readiness,
				SubmittedBy: submitter,
			}
		}
	}

	return out, nil
}

func (s *projectViewService) Clarifications(ctx context.Context, projectID string, dir *UserDirectory) ([]views.Clarification, error) {
	rows, err := s.projects.ProjectClarifications(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to list clarifications",
			zap.String("project_id", projectID),
			zap.Error(err))
		return nil, err
	}

	if dir == nil {
		dir = NewUserDirectory(s.users, s.logger)
	}

	out := make([]views.Clarification, 0, len(rows))
	for _, c := range rows {
		asker, err := dir.Resolve(ctx, c.AskedBy)
		if err != nil {
			return nil, err
		}

		view := views.Clarification{
			ID:       c.ID,
			Question: c.Question,
			AskedBy:  asker,
			AskedAt:  c.AskedAt,
			Status:   c.Status,
		}
		// Answer fields only appear once there is an answer; no empty
		// placeholders.
		if c.Answer != "" {
			view.Answer = c.Answer
		}
		if c.AnsweredBy != "" {
			answerer, err := dir.Resolve(ctx, c.AnsweredBy)
			if err != nil {
				return nil, err
			}
			view.AnsweredBy = answerer
		}
		if c.AnsweredAt != "" {
			view.AnsweredAt = c.AnsweredAt
		}
		out = append(out, view)
	}
	return out, nil
}
