package memory

import (
	"context"
	"sync"

	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	trainers      map[model.TrainerID]*model.Trainer
	usernameIndex map[string]model.TrainerID
	organizations map[model.OrganizationID]*model.Organization
	players       map[model.PlayerID]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		trainers:      make(map[model.TrainerID]*model.Trainer),
		usernameIndex: make(map[string]model.TrainerID),
		organizations: make(map[model.OrganizationID]*model.Organization),
		players:       make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Trainer operations

func (s *Storage) SaveTrainer(ctx context.Context, trainer *model.Trainer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainers[trainer.ID] = trainer
	s.usernameIndex[trainer.Username] = trainer.ID
	return nil
}

func (s *Storage) GetTrainer(ctx context.Context, id model.TrainerID) (*model.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trainer, ok := s.trainers[id]
	if !ok {
		return nil, model.ErrTrainerNotFound
	}
	return trainer, nil
}

func (s *Storage) GetTrainerByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trainerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrTrainerNotFound
	}
	trainer, ok := s.trainers[trainerID]
	if !ok {
		return nil, model.ErrTrainerNotFound
	}
	return trainer, nil
}

// Organization operations

func (s *Storage) SaveOrganization(ctx context.Context, org *model.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizations[org.ID] = org
	return nil
}

func (s *Storage) GetOrganization(ctx context.Context, id model.OrganizationID) (*model.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	org, ok := s.organizations[id]
	if !ok {
		return nil, model.ErrOrganizationNotFound
	}
	return org, nil
}

func (s *Storage) ListOrganizationsByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orgs := make([]*model.Organization, 0)
	for _, org := range s.organizations {
		if org.TrainerID == trainerID {
			orgs = append(orgs, org)
		}
	}
	return orgs, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayersByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0)
	for _, player := range s.players {
		if player.TrainerID == trainerID {
			players = append(players, player)
		}
	}
	return players, nil
}
