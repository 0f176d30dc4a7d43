package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/services"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

func TestDashboard(t *testing.T) {
	seed := &store.Memory{
		CurrentUserID: "u-me",
		UsersData: []models.User{
			{ID: "u-me", FirstName: "Mel", LastName: "Ops", Department: "ops", Performance: 80},
			{ID: "u-ada", FirstName: "Ada", LastName: "Lovelace", Department: "eng", Performance: 91},
		},
		IdeasData: []models.Idea{
			{ID: "i1", Title: "Faster onboarding", Score: 72, SubmittedBy: "u-ada"},
		},
		ProjectsData: []models.Project{
			{ID: "p1", Title: "Checkout revamp"},
		},
	}

	logger := zap.NewNop()
	ideas := services.NewIdeaViewService(seed, seed, logger)
	edges := services.NewEdgeViewService(seed, seed, seed, logger)
	projects := services.NewProjectViewService(seed, seed, seed, edges, logger)
	team := services.NewTeamViewService(seed, logger)

	mux := http.NewServeMux()
	NewDashboardHandler(ideas, projects, team, seed, logger).RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var page views.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))

	require.Len(t, page.Ideas, 1)
	assert.Equal(t, "Ada Lovelace", page.Ideas[0].SubmittedBy)

	require.Len(t, page.Projects, 1)
	assert.Equal(t, "Checkout revamp", page.Projects[0].Title)

	// The current user never shows up in their own team widget.
	require.Len(t, page.Team, 1)
	assert.Equal(t, "u-ada", page.Team[0].ID)
}
