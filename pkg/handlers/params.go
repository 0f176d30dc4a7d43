package handlers

import "net/http"

// RequireID extracts a non-empty path parameter. On a missing value it writes
// a 400 response and returns false. Entity ids are opaque strings owned by
// the store; no format is enforced here.
func RequireID(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	id := r.PathValue(param)
	if id == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_"+param, "Path parameter "+param+" is required")
		return "", false
	}
	return id, true
}
