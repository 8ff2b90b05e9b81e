package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/headcheck/headcheck/internal/api/middleware"
	"github.com/headcheck/headcheck/internal/api/request"
	"github.com/headcheck/headcheck/internal/api/response"
	"github.com/headcheck/headcheck/internal/services/auth"
)

// CookieConfig controls how the session cookie is issued
type CookieConfig struct {
	// Secure marks the cookie Secure; set in production
	Secure bool
	// MaxAge is the cookie lifetime, matching the token validity window
	MaxAge time.Duration
}

// UserHandler handles registration, login and session endpoints
type UserHandler struct {
	authService *auth.Service
	cookies     CookieConfig
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, cookies CookieConfig) *UserHandler {
	return &UserHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	response.JSON(w, http.StatusCreated, response.Message{Message: "Registered and logged in"})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("username and password are required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	response.JSON(w, http.StatusOK, response.Message{Message: "Login successful"})
}

// CheckAuth handles GET /api/users/check-auth
func (h *UserHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())
	response.JSON(w, http.StatusOK, response.CheckAuth{Username: trainer.Username})
}

// Logout handles POST /api/users/logout. It instructs the client to
// discard the cookie; the token itself stays valid until expiry since
// no server-side revocation list is kept.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Message{Message: "Logged out"})
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookies.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *UserHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
