package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/services"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

type mockProjectViews struct {
	listFn   func(ctx context.Context) ([]views.Project, error)
	detailFn func(ctx context.Context, id string) (*views.ProjectDetail, error)
}

func (m *mockProjectViews) ListProjects(ctx context.Context) ([]views.Project, error) {
	return m.listFn(ctx)
}

func (m *mockProjectViews) ComposeProjects(raw []models.Project) []views.Project {
	return nil
}

func (m *mockProjectViews) ProjectDetail(ctx context.Context, id string) (*views.ProjectDetail, error) {
	return m.detailFn(ctx, id)
}

func (m *mockProjectViews) ProjectForEngineering(ctx context.Context, id string) (*views.EngineeringProject, error) {
	return nil, errors.New("not implemented")
}

func (m *mockProjectViews) Clarifications(ctx context.Context, projectID string, dir *services.UserDirectory) ([]views.Clarification, error) {
	return nil, errors.New("not implemented")
}

var _ services.ProjectViewService = (*mockProjectViews)(nil)

func projectsMux(mock *mockProjectViews) *http.ServeMux {
	mux := http.NewServeMux()
	NewProjectsHandler(mock, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestProjectsList(t *testing.T) {
	mux := projectsMux(&mockProjectViews{
		listFn: func(ctx context.Context) ([]views.Project, error) {
			return []views.Project{{ID: "p1", Title: "Checkout revamp"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var out []views.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestProjectDetailNotFound(t *testing.T) {
	mux := projectsMux(&mockProjectViews{
		detailFn: func(ctx context.Context, id string) (*views.ProjectDetail, error) {
			return nil, apperrors.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestProjectDetailUpstreamFailure(t *testing.T) {
	mux := projectsMux(&mockProjectViews{
		detailFn: func(ctx context.Context, id string) (*views.ProjectDetail, error) {
			return nil, apperrors.Upstream("project-tasks", errors.New("boom"))
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/p1", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream_error", errorCode(t, rec))
}

func TestProjectDetailInternalError(t *testing.T) {
	mux := projectsMux(&mockProjectViews{
		detailFn: func(ctx context.Context, id string) (*views.ProjectDetail, error) {
			return nil, errors.New("unexpected")
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/p1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}
