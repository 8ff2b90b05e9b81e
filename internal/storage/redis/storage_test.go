package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/headcheck/headcheck/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Trainer tests

func (s *StorageSuite) TestSaveAndGetTrainer() {
	trainer := &model.Trainer{
		ID:           "trainer-1",
		Username:     "coach1",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveTrainer(s.ctx, trainer)
	s.Require().NoError(err)

	got, err := s.storage.GetTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Equal(trainer.ID, got.ID)
	s.Equal(trainer.Username, got.Username)
	s.Equal(trainer.PasswordHash, got.PasswordHash)
}

func (s *StorageSuite) TestGetTrainerNotFound() {
	_, err := s.storage.GetTrainer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTrainerNotFound)
}

func (s *StorageSuite) TestGetTrainerByUsername() {
	trainer := &model.Trainer{ID: "trainer-1", Username: "coach1"}
	err := s.storage.SaveTrainer(s.ctx, trainer)
	s.Require().NoError(err)

	got, err := s.storage.GetTrainerByUsername(s.ctx, "coach1")
	s.Require().NoError(err)
	s.Equal(trainer.ID, got.ID)

	_, err = s.storage.GetTrainerByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrTrainerNotFound)
}

// Organization tests

func (s *StorageSuite) TestSaveAndGetOrganization() {
	org := &model.Organization{ID: "org-1", TrainerID: "trainer-1", Name: "Wildcats"}

	err := s.storage.SaveOrganization(s.ctx, org)
	s.Require().NoError(err)

	got, err := s.storage.GetOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Equal(org.Name, got.Name)
	s.Equal(org.TrainerID, got.TrainerID)
}

func (s *StorageSuite) TestGetOrganizationNotFound() {
	_, err := s.storage.GetOrganization(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrOrganizationNotFound)
}

func (s *StorageSuite) TestListOrganizationsScopedByTrainer() {
	err := s.storage.SaveOrganization(s.ctx, &model.Organization{ID: "org-1", TrainerID: "trainer-1", Name: "Wildcats"})
	s.Require().NoError(err)
	err = s.storage.SaveOrganization(s.ctx, &model.Organization{ID: "org-2", TrainerID: "trainer-1", Name: "Hawks"})
	s.Require().NoError(err)
	err = s.storage.SaveOrganization(s.ctx, &model.Organization{ID: "org-3", TrainerID: "trainer-2", Name: "Falcons"})
	s.Require().NoError(err)

	orgs, err := s.storage.ListOrganizationsByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Len(orgs, 2)
	for _, org := range orgs {
		s.Equal(model.TrainerID("trainer-1"), org.TrainerID)
	}
}

func (s *StorageSuite) TestListOrganizationsEmpty() {
	orgs, err := s.storage.ListOrganizationsByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Empty(orgs)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:             "player-1",
		TrainerID:      "trainer-1",
		OrganizationID: "org-1",
		Name:           "Jordan Smith",
		DOB:            time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:         model.StatusActive,
		Address:        model.Address{Street: "1 Main St", City: "Springfield", Zip: "12345"},
		Emergency:      model.EmergencyContact{ContactName: "Pat Smith", ContactPhone: "555-0100"},
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	got, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, got.Name)
	s.Equal(player.DOB, got.DOB)
	s.Equal(player.Address, got.Address)
	s.Equal(player.Emergency, got.Emergency)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersScopedByTrainer() {
	err := s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", TrainerID: "trainer-1", Name: "A"})
	s.Require().NoError(err)
	err = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", TrainerID: "trainer-2", Name: "B"})
	s.Require().NoError(err)

	players, err := s.storage.ListPlayersByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
}

func (s *StorageSuite) TestSavePlayerOverwrites() {
	err := s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", TrainerID: "trainer-1", Name: "Before"})
	s.Require().NoError(err)
	err = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", TrainerID: "trainer-1", Name: "After"})
	s.Require().NoError(err)

	got, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("After", got.Name)

	// Overwrite must not duplicate the index entry
	players, err := s.storage.ListPlayersByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Len(players, 1)
}
