package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
)

// Client is the HTTP implementation of EntityStore. Collections map to GET
// paths under the configured base URL. The client performs no retries: a
// failed read surfaces as an UpstreamError and the composition that issued it
// is aborted by the caller.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *zap.Logger
}

var _ EntityStore = (*Client)(nil)

// NewClient creates a store client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("store base URL %q must be absolute", baseURL)
	}
	return &Client{
		base:   parsed,
		http:   &http.Client{Timeout: timeout},
		logger: logger.Named("store-client"),
	}, nil
}

// get fetches one collection path and decodes the body into out. A 404 maps
// to apperrors.ErrNotFound; every other failure wraps into an UpstreamError
// for the given collection name.
func (c *Client) get(ctx context.Context, collection, path string, out any) error {
	target := c.base.JoinPath(strings.Split(path, "/")...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return apperrors.Upstream(collection, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Entity store request failed",
			zap.String("collection", collection),
			zap.Error(err))
		return apperrors.Upstream(collection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("Entity store returned error status",
			zap.String("collection", collection),
			zap.Int("status", resp.StatusCode))
		return apperrors.Upstream(collection, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Upstream(collection, fmt.Errorf("decode: %w", err))
	}
	return nil
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	if err := c.get(ctx, ColUsers, "users", &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Normalize()
	}
	return rows, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var row models.User
	if err := c.get(ctx, ColCurrentUser, "current-user", &row); err != nil {
		return nil, err
	}
	row.Normalize()
	return &row, nil
}

func (c *Client) Ideas(ctx context.Context) ([]models.Idea, error) {
	var rows []models.Idea
	if err := c.get(ctx, ColIdeas, "ideas", &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Normalize()
	}
	return rows, nil
}

func (c *Client) Idea(ctx context.Context, id string) (*models.Idea, error) {
	var row models.Idea
	if err := c.get(ctx, ColIdeas, "ideas/"+id, &row); err != nil {
		return nil, err
	}
	row.Normalize()
	return &row, nil
}

func (c *Client) IdeaScore(ctx context.Context, ideaID string) (*models.IdeaScore, error) {
	var row models.IdeaScore
	err := c.get(ctx, ColIdeaScore, "ideas/"+ideaID+"/score", &row)
	if errors.Is(err, apperrors.ErrNotFound) {
		// A missing scoring record is a legitimate state, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) Edges(ctx context.Context) ([]models.Edge, error) {
	var rows []models.Edge
	if err := c.get(ctx, ColEdges, "edges", &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Normalize()
	}
	return rows, nil
}

func (c *Client) EdgeOutcomes(ctx context.Context) ([]models.EdgeOutcome, error) {
	var rows []models.EdgeOutcome
	if err := c.get(ctx, ColEdgeOutcomes, "edge-outcomes", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) EdgeMetrics(ctx context.Context) ([]models.EdgeMetric, error) {
	var rows []models.EdgeMetric
	if err := c.get(ctx, ColEdgeMetrics, "edge-metrics", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	if err := c.get(ctx, ColProjects, "projects", &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Normalize()
	}
	return rows, nil
}

func (c *Client) Project(ctx context.Context, id string) (*models.Project, error) {
	var row models.Project
	if err := c.get(ctx, ColProjects, "projects/"+id, &row); err != nil {
		return nil, err
	}
	row.Normalize()
	return &row, nil
}

func (c *Client) ProjectTeam(ctx context.Context, projectID string) ([]models.ProjectTeamMember, error) {
	var rows []models.ProjectTeamMember
	if err := c.get(ctx, ColProjectTeam, "projects/"+projectID+"/team", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ProjectMilestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	var rows []models.Milestone
	if err := c.get(ctx, ColProjectMilestones, "projects/"+projectID+"/milestones", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ProjectTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	var rows []models.ProjectTask
	if err := c.get(ctx, ColProjectTasks, "projects/"+projectID+"/tasks", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ProjectDiscussions(ctx context.Context, projectID string) ([]models.Discussion, error) {
	var rows []models.Discussion
	if err := c.get(ctx, ColProjectDiscussions, "projects/"+projectID+"/discussions", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ProjectVersions(ctx context.Context, projectID string) ([]models.ProjectVersion, error) {
	var rows []models.ProjectVersion
	if err := c.get(ctx, ColProjectVersions, "projects/"+projectID+"/versions", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ProjectClarifications(ctx context.Context, projectID string) ([]models.Clarification, error) {
	var rows []models.Clarification
	if err := c.get(ctx, ColProjectClarifications, "projects/"+projectID+"/clarifications", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Account(ctx context.Context) (*models.Account, error) {
	var row models.Account
	if err := c.get(ctx, ColAccount, "account", &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) CompanySettings(ctx context.Context) (*models.CompanySettings, error) {
	var row models.CompanySettings
	if err := c.get(ctx, ColCompanySettings, "company-settings", &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Client) NotificationCategories(ctx context.Context) ([]models.NotificationCategory, error) {
	var rows []models.NotificationCategory
	if err := c.get(ctx, ColNotificationCategories, "notification-categories", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) NotificationPreferences(ctx context.Context) ([]models.NotificationPreference, error) {
	var rows []models.NotificationPreference
	if err := c.get(ctx, ColNotificationPreferences, "notification-preferences", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Activities(ctx context.Context) ([]models.Activity, error) {
	var rows []models.Activity
	if err := c.get(ctx, ColActivities, "activities", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CrunchColumns(ctx context.Context) ([]models.CrunchColumn, error) {
	var rows []models.CrunchColumn
	if err := c.get(ctx, ColCrunchColumns, "crunch-columns", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Processes(ctx context.Context) ([]models.Process, error) {
	var rows []models.Process
	if err := c.get(ctx, ColProcesses, "processes", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
