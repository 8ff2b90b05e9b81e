// Package organization is the ownership-scoped gateway for organization
// records: every operation takes the calling trainer's identity
// explicitly and only ever touches records owned by it.
package organization

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/headcheck/headcheck/internal/dependencies/clock"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// ErrNameRequired is returned when creating an organization without a name
var ErrNameRequired = errors.New("organization name is required")

// Service handles organization operations
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new organization Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Create persists a new organization owned by the given trainer
func (s *Service) Create(ctx context.Context, trainerID model.TrainerID, name string) (*model.Organization, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	org := &model.Organization{
		ID:        model.OrganizationID(uuid.NewString()),
		TrainerID: trainerID,
		Name:      name,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveOrganization(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// ListByTrainer returns all organizations owned by the given trainer
func (s *Service) ListByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Organization, error) {
	return s.storage.ListOrganizationsByTrainer(ctx, trainerID)
}

// GetOwned returns an organization only if it is owned by the given
// trainer. A non-owned organization is indistinguishable from an absent
// one.
func (s *Service) GetOwned(ctx context.Context, trainerID model.TrainerID, id model.OrganizationID) (*model.Organization, error) {
	org, err := s.storage.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.TrainerID != trainerID {
		return nil, model.ErrOrganizationNotFound
	}
	return org, nil
}
