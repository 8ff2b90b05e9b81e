// Package screening resolves an owned player into the display projection
// shown before a concussion test run. The analysis itself is performed
// by an external service and is not part of this server.
package screening

import (
	"context"
	"errors"

	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// TestSubject is the confirmation projection for a test run
type TestSubject struct {
	PlayerID         model.PlayerID
	Name             string
	DOB              string // YYYY-MM-DD
	OrganizationName string
}

// Service handles test-start lookups
type Service struct {
	storage storage.Storage
}

// New creates a new screening Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// StartTest looks up a player owned by the given trainer and returns its
// display projection. Fails with model.ErrPlayerNotFound if the player
// is absent or owned by another trainer.
func (s *Service) StartTest(ctx context.Context, trainerID model.TrainerID, playerID model.PlayerID) (*TestSubject, error) {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.TrainerID != trainerID {
		return nil, model.ErrPlayerNotFound
	}

	orgName := "Unknown"
	org, err := s.storage.GetOrganization(ctx, player.OrganizationID)
	if err != nil && !errors.Is(err, model.ErrOrganizationNotFound) {
		return nil, err
	}
	if org != nil {
		orgName = org.Name
	}

	return &TestSubject{
		PlayerID:         player.ID,
		Name:             player.Name,
		DOB:              player.DOB.Format("2006-01-02"),
		OrganizationName: orgName,
	}, nil
}
