package storage

import (
	"context"

	"github.com/headcheck/headcheck/internal/model"
)

// Storage defines the interface for data persistence.
// List operations take the owning trainer so every read path is scoped
// by owner at the storage boundary.
type Storage interface {
	// Trainer operations
	SaveTrainer(ctx context.Context, trainer *model.Trainer) error
	GetTrainer(ctx context.Context, id model.TrainerID) (*model.Trainer, error)
	GetTrainerByUsername(ctx context.Context, username string) (*model.Trainer, error)

	// Organization operations
	SaveOrganization(ctx context.Context, org *model.Organization) error
	GetOrganization(ctx context.Context, id model.OrganizationID) (*model.Organization, error)
	ListOrganizationsByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Organization, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayersByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Player, error)
}
