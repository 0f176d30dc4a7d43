package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
)

// EdgesHandler serves the edge inventory.
type EdgesHandler struct {
	edges  services.EdgeViewService
	logger *zap.Logger
}

// NewEdgesHandler creates a new edges handler.
func NewEdgesHandler(edges services.EdgeViewService, logger *zap.Logger) *EdgesHandler {
	return &EdgesHandler{edges: edges, logger: logger}
}

// RegisterRoutes registers the edges handler's routes on the given mux.
func (h *EdgesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/edges", h.List)
}

// List handles GET /api/edges.
func (h *EdgesHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.edges.EdgeList(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode edge list", zap.Error(err))
	}
}
