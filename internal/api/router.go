package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/headcheck/headcheck/internal/api/handler"
	"github.com/headcheck/headcheck/internal/api/middleware"
	"github.com/headcheck/headcheck/internal/services/auth"
	"github.com/headcheck/headcheck/internal/services/organization"
	"github.com/headcheck/headcheck/internal/services/player"
	"github.com/headcheck/headcheck/internal/services/screening"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AuthService         *auth.Service
	OrganizationService *organization.Service
	PlayerService       *player.Service
	ScreeningService    *screening.Service

	// SecureCookies marks session cookies Secure; set in production
	SecureCookies bool
	// SessionMaxAge is the session cookie lifetime
	SessionMaxAge time.Duration
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService, handler.CookieConfig{
		Secure: cfg.SecureCookies,
		MaxAge: cfg.SessionMaxAge,
	})
	orgHandler := handler.NewOrganizationHandler(cfg.OrganizationService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	screeningHandler := handler.NewScreeningHandler(cfg.ScreeningService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// User routes (register/login/logout require no session)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/logout", userHandler.Logout).Methods(http.MethodPost)

	// Protected user routes
	userProtected := api.PathPrefix("/users").Subrouter()
	userProtected.Use(authMiddleware)
	userProtected.HandleFunc("/check-auth", userHandler.CheckAuth).Methods(http.MethodGet)

	// Organization routes (all require auth)
	orgs := api.PathPrefix("/organizations").Subrouter()
	orgs.Use(authMiddleware)
	orgs.HandleFunc("", orgHandler.Create).Methods(http.MethodPost)
	orgs.HandleFunc("", orgHandler.List).Methods(http.MethodGet)

	// Player routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPut)

	// Test screening routes (all require auth)
	testing := api.PathPrefix("/testing").Subrouter()
	testing.Use(authMiddleware)
	testing.HandleFunc("/start", screeningHandler.StartTest).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
