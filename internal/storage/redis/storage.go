package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON documents; per-trainer SETs index ownership
// so list operations never scan another trainer's records.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Trainer operations

func (s *Storage) SaveTrainer(ctx context.Context, trainer *model.Trainer) error {
	data, err := json.Marshal(trainer)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, trainerKey(trainer.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(trainer.Username), string(trainer.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTrainer(ctx context.Context, id model.TrainerID) (*model.Trainer, error) {
	data, err := s.client.Get(ctx, trainerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTrainerNotFound
		}
		return nil, err
	}

	var trainer model.Trainer
	if err := json.Unmarshal(data, &trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (s *Storage) GetTrainerByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	trainerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTrainerNotFound
		}
		return nil, err
	}

	return s.GetTrainer(ctx, model.TrainerID(trainerIDStr))
}

// Organization operations

func (s *Storage) SaveOrganization(ctx context.Context, org *model.Organization) error {
	data, err := json.Marshal(org)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, organizationKey(org.ID), data, 0)
	pipe.SAdd(ctx, orgsForTrainerIndexKey(org.TrainerID), organizationKey(org.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetOrganization(ctx context.Context, id model.OrganizationID) (*model.Organization, error) {
	data, err := s.client.Get(ctx, organizationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOrganizationNotFound
		}
		return nil, err
	}

	var org model.Organization
	if err := json.Unmarshal(data, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *Storage) ListOrganizationsByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Organization, error) {
	keys, err := s.client.SMembers(ctx, orgsForTrainerIndexKey(trainerID)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Organization{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	orgs := make([]*model.Organization, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var org model.Organization
		if err := json.Unmarshal([]byte(val.(string)), &org); err != nil {
			continue // Skip invalid data
		}
		orgs = append(orgs, &org)
	}

	return orgs, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersForTrainerIndexKey(player.TrainerID), playerKey(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayersByTrainer(ctx context.Context, trainerID model.TrainerID) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersForTrainerIndexKey(trainerID)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}
