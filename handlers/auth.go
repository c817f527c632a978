package handlers

import (
	"net/http"
	"time"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/models"
	"prode-go/services"
)

// AuthHandler handles registration, login and the current-user endpoint
type AuthHandler struct {
	authService *services.AuthService
	logger      *logging.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logging.WithPrefix("AuthHandler"),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondBadRequest(w, "name, email and password are required")
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.setAuthCookie(w, resp.Token)
	respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondBadRequest(w, "email and password are required")
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warnf("Login failed for %s: %v", req.Email, err)
		respondError(w, err)
		return
	}

	h.setAuthCookie(w, resp.Token)
	h.logger.Infof("User %s (%s) logged in", resp.User.Name, resp.User.Email)
	respondJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, user.ToSafeUser())
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
