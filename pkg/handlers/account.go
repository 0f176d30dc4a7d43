package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/services"
)

// AccountHandler serves the account, profile and workspace view models.
type AccountHandler struct {
	account services.AccountViewService
	logger  *zap.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(account services.AccountViewService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{account: account, logger: logger}
}

// RegisterRoutes registers the account handler's routes on the given mux.
func (h *AccountHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/account", h.Account)
	mux.HandleFunc("GET /api/profile", h.Profile)
	mux.HandleFunc("GET /api/activity", h.Activity)
	mux.HandleFunc("GET /api/notifications/categories", h.NotificationCategories)
	mux.HandleFunc("GET /api/workspace/columns", h.CrunchColumns)
	mux.HandleFunc("GET /api/workspace/processes", h.Processes)
}

// Account handles GET /api/account.
func (h *AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.Account(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode account", zap.Error(err))
	}
}

// Profile handles GET /api/profile.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.Profile(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode profile", zap.Error(err))
	}
}

// Activity handles GET /api/activity.
func (h *AccountHandler) Activity(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.ActivityFeed(r.Context(), nil)
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode activity feed", zap.Error(err))
	}
}

// NotificationCategories handles GET /api/notifications/categories.
func (h *AccountHandler) NotificationCategories(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.NotificationCategories(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode notification categories", zap.Error(err))
	}
}

// CrunchColumns handles GET /api/workspace/columns.
func (h *AccountHandler) CrunchColumns(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.CrunchColumns(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode crunch columns", zap.Error(err))
	}
}

// Processes handles GET /api/workspace/processes.
func (h *AccountHandler) Processes(w http.ResponseWriter, r *http.Request) {
	out, err := h.account.Processes(r.Context())
	if err != nil {
		WriteComposerError(w, h.logger, err)
		return
	}
	if err := WriteJSON(w, http.StatusOK, out); err != nil {
		h.logger.Error("Failed to encode processes", zap.Error(err))
	}
}
