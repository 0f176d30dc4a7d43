package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// DashboardHandler composes the landing page: three widgets fanned out
// concurrently, with one user directory built per request and shared by every
// name-resolving composition.
type DashboardHandler struct {
	ideas    services.IdeaViewService
	projects services.ProjectViewService
	team     services.TeamViewService
	users    store.UserStore
	logger   *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(ideas services.IdeaViewService, projects services.ProjectViewService, team services.TeamViewService, users store.UserStore, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		ideas:    ideas,
		projects: projects,
		team:     team,
		users:    users,
		logger:   logger,
	}
}

// RegisterRoutes registers the dashboard handler's routes on the given mux.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard", h.Dashboard)
}

// Dashboard handles GET /api/dashboard. Any failed widget aborts the whole
// page; there are no partial dashboards.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dir := services.NewUserDirectory(h.users, h.logger)

	var page views.Dashboard

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		page.Ideas, err = h.ideas.ListIdeas(gctx, dir)
		return err
	})
	g.Go(func() error {
		var err error
		page.Projects, err = h.projects.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Team, err = h.team.TeamMembers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, page); err != nil {
		h.logger.Error("Failed to encode dashboard", zap.Error(err))
	}
}
