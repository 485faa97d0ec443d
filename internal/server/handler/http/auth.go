// Package http provides the HTTP handlers for the storefront API: login,
// product listing and user registration.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeenkov/shopview/internal/models"
	"github.com/avdeenkov/shopview/internal/service"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Authenticate verifies credentials and issues a session token.
	Authenticate(ctx context.Context, username, password string) (models.User, string, error)
	// CreateUser registers a new user and returns its id.
	CreateUser(ctx context.Context, form models.RegistrationForm) (string, error)
}

// AuthHandler handles login and registration requests.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned on successful login. The client only
// consumes the token; the profile fields mirror the upstream service shape.
type LoginResponse struct {
	Token     string `json:"token"`
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login handles POST /auth/login. It expects a JSON body with non-empty
// "username" and "password" fields and answers 400 for malformed bodies and
// for bad credentials alike.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{
		Token:     token,
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// RegisterResponse is the payload returned on successful registration.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Register handles POST /users/add. It expects the full registration form
// and answers 201 with the new user's id.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form models.RegistrationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Username == "" || form.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.AuthService.CreateUser(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(RegisterResponse{ID: id, Username: form.Username})
}
