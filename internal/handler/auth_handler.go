package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"photoblog/internal/repository"
	"photoblog/internal/service"
)

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			WriteError(w, "username already exists", http.StatusConflict)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	token, username, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid username or password", http.StatusUnauthorized)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, LoginResponse{Token: token, Username: username}, http.StatusOK)
}
