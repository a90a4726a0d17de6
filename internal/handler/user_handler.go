package handlers

import (
	"net/http"

	"photoblog/internal/middleware"
)

type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Me reports the identity decoded from the caller's token.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Access denied", http.StatusUnauthorized)
		return
	}

	username, _ := middleware.Username(r.Context())

	WriteJSON(w, MeResponse{ID: userID, Username: username}, http.StatusOK)
}
