package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
)

// IdeasHandler serves the idea view models.
type IdeasHandler struct {
	ideas  services.IdeaViewService
	edges  services.EdgeViewService
	logger *zap.Logger
}

// NewIdeasHandler creates a new ideas handler. The edge composer backs the
// per-idea edge form endpoint.
func NewIdeasHandler(ideas services.IdeaViewService, edges services.EdgeViewService, logger *zap.Logger) *IdeasHandler {
	return &IdeasHandler{
		ideas:  ideas,
		edges:  edges,
		logger: logger,
	}
}

// RegisterRoutes registers the ideas handler's routes on the given mux.
func (h *IdeasHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/ideas", h.List)
	mux.HandleFunc("GET /api/ideas/review-queue", h.ReviewQueue)
	mux.HandleFunc("GET /api/ideas/{id}/conversion", h.Conversion)
	mux.HandleFunc("GET /api/ideas/{id}/approval", h.Approval)
	mux.HandleFunc("GET /api/ideas/{id}/edge", h.Edge)
}

// List handles GET /api/ideas.
func (h *IdeasHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.ideas.ListIdeas(r.Context(), nil)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode ideas", zap.Error(err))
	}
}

// ReviewQueue handles GET /api/ideas/review-queue.
func (h *IdeasHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	out, err := h.ideas.ReviewQueue(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode review queue", zap.Error(err))
	}
}

// Conversion handles GET /api/ideas/{id}/conversion.
func (h *IdeasHandler) Conversion(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.ideas.IdeaForConversion(r.Context(), id)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode conversion idea", zap.Error(err))
	}
}

// Approval handles GET /api/ideas/{id}/approval.
func (h *IdeasHandler) Approval(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.ideas.IdeaForApproval(r.Context(), id, nil)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode approval idea", zap.Error(err))
	}
}

// Edge handles GET /api/ideas/{id}/edge: the edge form pre-fill for one idea.
func (h *IdeasHandler) Edge(w http.ResponseWriter, r *http.Request) {
	id, ok := RequireID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.edges.EdgeDataWithConfidence(r.Context(), id, nil)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode edge data", zap.Error(err))
	}
}
