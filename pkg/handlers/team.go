package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
)

// TeamHandler serves the team widget and the user-management table.
type TeamHandler struct {
	team   services.TeamViewService
	logger *zap.Logger
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(team services.TeamViewService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{team: team, logger: logger}
}

// RegisterRoutes registers the team handler's routes on the given mux.
func (h *TeamHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/team/members", h.Members)
	mux.HandleFunc("GET /api/team/users", h.ManagedUsers)
}

// Members handles GET /api/team/members.
func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	out, err := h.team.TeamMembers(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode team members", zap.Error(err))
	}
}

// ManagedUsers handles GET /api/team/users.
func (h *TeamHandler) ManagedUsers(w http.ResponseWriter, r *http.Request) {
	out, err := h.team.ManagedUsers(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode managed users", zap.Error(err))
	}
}
