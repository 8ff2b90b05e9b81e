// Package auth implements the credential and session service: password
// registration/login and signed, expiring session tokens.
//
// Sessions are stateless: the server holds no session table, only the
// signing secret. A known limitation follows from this — logout cannot
// revoke a token server-side, so a stolen token remains valid until its
// natural expiry.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/headcheck/headcheck/internal/dependencies/clock"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameTaken      = errors.New("username already taken")
)

// bcryptCost matches the 12-round work factor the records were
// originally hashed with
const bcryptCost = 12

// Claims are the statements embedded in a session token: the trainer
// reference and the registered expiry, nothing else.
type Claims struct {
	jwt.RegisteredClaims
	TrainerID string `json:"trainer_id"`
}

// Session is an issued credential bound to one trainer
type Session struct {
	Token     string
	TrainerID model.TrainerID
	Trainer   model.Trainer
	ExpiresAt time.Time
}

// Config holds configuration for the auth service
type Config struct {
	// Secret signs session tokens (HS256)
	Secret []byte
	// TokenTTL is the session validity window
	TokenTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenTTL: 3 * 24 * time.Hour,
	}
}

// Service handles authentication and session tokens
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	secret   []byte
	tokenTTL time.Duration
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	return &Service{
		storage:  storage,
		clock:    clock,
		secret:   cfg.Secret,
		tokenTTL: cfg.TokenTTL,
	}
}

// Register creates a trainer account and issues a session.
// Fails with ErrUsernameTaken if the username is already registered.
func (s *Service) Register(ctx context.Context, username, password string) (*Session, error) {
	_, err := s.storage.GetTrainerByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrTrainerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	trainer := &model.Trainer{
		ID:           model.TrainerID(uuid.NewString()),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveTrainer(ctx, trainer); err != nil {
		return nil, err
	}

	return s.issueSession(trainer)
}

// Login authenticates a trainer and issues a session. An unknown
// username and a wrong password both yield ErrInvalidCredentials with
// no distinguishing signal.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	trainer, err := s.storage.GetTrainerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrTrainerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// bcrypt comparison is constant-time
	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(trainer)
}

// VerifySession validates a token's signature and expiry and resolves
// the bound trainer. Fails with ErrInvalidSession on any tamper or
// expiry failure, or if the embedded trainer no longer exists.
func (s *Service) VerifySession(ctx context.Context, token string) (*model.Trainer, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	trainer, err := s.storage.GetTrainer(ctx, model.TrainerID(claims.TrainerID))
	if err != nil {
		if errors.Is(err, model.ErrTrainerNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return trainer, nil
}

// issueSession signs a new token for a trainer
func (s *Service) issueSession(trainer *model.Trainer) (*Session, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		TrainerID: string(trainer.ID),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     signed,
		TrainerID: trainer.ID,
		Trainer:   *trainer,
		ExpiresAt: expiresAt,
	}, nil
}
