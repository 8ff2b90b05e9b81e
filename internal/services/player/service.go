// Package player is the ownership-scoped gateway for player records.
// Every read and write is bound to the calling trainer's identity; a
// player owned by another trainer is indistinguishable from one that
// does not exist.
package player

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/headcheck/headcheck/internal/dependencies/clock"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// Validation errors
var (
	ErrNameRequired         = errors.New("player name is required")
	ErrDOBRequired          = errors.New("player date of birth is required")
	ErrOrganizationRequired = errors.New("organization is required")
)

// CreateParams holds the fields for a new player record
type CreateParams struct {
	OrganizationID model.OrganizationID
	Name           string
	DOB            time.Time
	Age            int
	Height         string
	Weight         string
	Email          string
	Phone          string
	ProfilePicURL  string
	Address        model.Address
	Emergency      model.EmergencyContact
	Status         model.PlayerStatus
	MedicalNotes   string
}

// PlayerWithOrganization pairs a player with its resolved organization
// for display
type PlayerWithOrganization struct {
	Player       *model.Player
	Organization *model.Organization
}

// Service handles player operations
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Create persists a new player owned by the given trainer. The linked
// organization must itself be owned by the trainer.
func (s *Service) Create(ctx context.Context, trainerID model.TrainerID, params CreateParams) (*model.Player, error) {
	if params.Name == "" {
		return nil, ErrNameRequired
	}
	if params.DOB.IsZero() {
		return nil, ErrDOBRequired
	}
	if params.OrganizationID == "" {
		return nil, ErrOrganizationRequired
	}

	status := params.Status
	if status == "" {
		status = model.StatusActive
	}
	if !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	org, err := s.storage.GetOrganization(ctx, params.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org.TrainerID != trainerID {
		return nil, model.ErrOrganizationNotFound
	}

	player := &model.Player{
		ID:             model.PlayerID(uuid.NewString()),
		TrainerID:      trainerID,
		OrganizationID: params.OrganizationID,
		Name:           params.Name,
		DOB:            params.DOB,
		Age:            params.Age,
		Height:         params.Height,
		Weight:         params.Weight,
		Email:          params.Email,
		Phone:          params.Phone,
		ProfilePicURL:  params.ProfilePicURL,
		Address:        params.Address,
		Emergency:      params.Emergency,
		Status:         status,
		MedicalNotes:   params.MedicalNotes,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// ListByTrainer returns all players owned by the given trainer, each
// with its linked organization resolved
func (s *Service) ListByTrainer(ctx context.Context, trainerID model.TrainerID) ([]PlayerWithOrganization, error) {
	players, err := s.storage.ListPlayersByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	result := make([]PlayerWithOrganization, 0, len(players))
	for _, p := range players {
		org, err := s.storage.GetOrganization(ctx, p.OrganizationID)
		if err != nil {
			if errors.Is(err, model.ErrOrganizationNotFound) {
				// Dangling link; surface the player without it
				result = append(result, PlayerWithOrganization{Player: p})
				continue
			}
			return nil, err
		}
		result = append(result, PlayerWithOrganization{Player: p, Organization: org})
	}

	return result, nil
}

// GetOwned returns a player only if it is owned by the given trainer
func (s *Service) GetOwned(ctx context.Context, trainerID model.TrainerID, id model.PlayerID) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	if player.TrainerID != trainerID {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Update applies a partial update to a player owned by the given
// trainer. Fails with model.ErrPlayerNotFound, leaving the record
// unchanged, if no such owned player exists.
func (s *Service) Update(ctx context.Context, trainerID model.TrainerID, id model.PlayerID, update model.PlayerUpdate) (*model.Player, error) {
	player, err := s.GetOwned(ctx, trainerID, id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil && !model.ValidStatus(*update.Status) {
		return nil, model.ErrInvalidStatus
	}

	updated := *player
	update.Apply(&updated)

	if err := s.storage.SavePlayer(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
