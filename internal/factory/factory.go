package factory

import (
	"errors"

	"github.com/headcheck/headcheck/internal/dependencies/clock"
	"github.com/headcheck/headcheck/internal/services/auth"
	"github.com/headcheck/headcheck/internal/services/organization"
	"github.com/headcheck/headcheck/internal/services/player"
	"github.com/headcheck/headcheck/internal/services/screening"
	"github.com/headcheck/headcheck/internal/storage"
	"github.com/headcheck/headcheck/internal/storage/memory"
	redisstorage "github.com/headcheck/headcheck/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService         *auth.Service
	OrganizationService *organization.Service
	PlayerService       *player.Service
	ScreeningService    *screening.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service; the Secret
	// must be set outside tests
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.TokenTTL == 0 {
		authCfg.TokenTTL = auth.DefaultConfig().TokenTTL
	}

	return newWithDependencies(store, clk, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config) *App {
	return &App{
		Storage:             store,
		Clock:               clk,
		AuthService:         auth.New(store, clk, authCfg),
		OrganizationService: organization.New(store, clk),
		PlayerService:       player.New(store, clk),
		ScreeningService:    screening.New(store),
	}
}
