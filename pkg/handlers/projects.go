package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
)

// ProjectsHandler serves the project view models.
type ProjectsHandler struct {
	projects services.ProjectViewService
	logger   *zap.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(projects services.ProjectViewService, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{projects: projects, logger: logger}
}

// RegisterRoutes registers the projects handler's routes on the given mux.
func (h *ProjectsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("GET /api/projects/{pid}", h.Detail)
	mux.HandleFunc("GET /api/projects/{pid}/engineering", h.Engineering)
	mux.HandleFunc("GET /api/projects/{pid}/clarifications", h.Clarifications)
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.projects.ListProjects(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode projects", zap.Error(err))
	}
}

// Detail handles GET /api/projects/{pid}.
func (h *ProjectsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "pid")
	if !ok {
		return
	}
	out, err := h.projects.ProjectDetail(r.Context(), id)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode project detail", zap.Error(err))
	}
}

// Engineering handles GET /api/projects/{pid}/engineering.
func (h *ProjectsHandler) Engineering(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "pid")
	if !ok {
		return
	}
	out, err := h.projects.ProjectForEngineering(r.Context(), id)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode engineering project", zap.Error(err))
	}
}

// Clarifications handles GET /api/projects/{pid}/clarifications.
func (h *ProjectsHandler) Clarifications(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "pid")
	if !ok {
		return
	}
	out, err := h.projects.Clarifications(r.Context(), id, nil)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode clarifications", zap.Error(err))
	}
}
