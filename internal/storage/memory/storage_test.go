package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headcheck/headcheck/internal/model"
)

func TestSaveAndGetTrainer(t *testing.T) {
	s := New()
	ctx := context.Background()

	trainer := &model.Trainer{
		ID:           "trainer-1",
		Username:     "coach1",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	require.NoError(t, s.SaveTrainer(ctx, trainer))

	got, err := s.GetTrainer(ctx, "trainer-1")
	require.NoError(t, err)
	assert.Equal(t, "coach1", got.Username)

	byName, err := s.GetTrainerByUsername(ctx, "coach1")
	require.NoError(t, err)
	assert.Equal(t, trainer.ID, byName.ID)
}

func TestGetTrainerNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetTrainer(ctx, "nonexistent")
	assert.ErrorIs(t, err, model.ErrTrainerNotFound)

	_, err = s.GetTrainerByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrTrainerNotFound)
}

func TestSaveAndGetOrganization(t *testing.T) {
	s := New()
	ctx := context.Background()

	org := &model.Organization{ID: "org-1", TrainerID: "trainer-1", Name: "Wildcats"}
	require.NoError(t, s.SaveOrganization(ctx, org))

	got, err := s.GetOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, "Wildcats", got.Name)

	_, err = s.GetOrganization(ctx, "nonexistent")
	assert.ErrorIs(t, err, model.ErrOrganizationNotFound)
}

func TestListOrganizationsScopedByTrainer(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveOrganization(ctx, &model.Organization{ID: "org-1", TrainerID: "trainer-1", Name: "Wildcats"}))
	require.NoError(t, s.SaveOrganization(ctx, &model.Organization{ID: "org-2", TrainerID: "trainer-2", Name: "Falcons"}))

	orgs, err := s.ListOrganizationsByTrainer(ctx, "trainer-1")
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, model.OrganizationID("org-1"), orgs[0].ID)
}

func TestSaveAndGetPlayer(t *testing.T) {
	s := New()
	ctx := context.Background()

	player := &model.Player{
		ID:             "player-1",
		TrainerID:      "trainer-1",
		OrganizationID: "org-1",
		Name:           "Jordan Smith",
		DOB:            time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:         model.StatusActive,
	}
	require.NoError(t, s.SavePlayer(ctx, player))

	got, err := s.GetPlayer(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", got.Name)

	_, err = s.GetPlayer(ctx, "nonexistent")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestListPlayersScopedByTrainer(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SavePlayer(ctx, &model.Player{ID: "player-1", TrainerID: "trainer-1", Name: "A"}))
	require.NoError(t, s.SavePlayer(ctx, &model.Player{ID: "player-2", TrainerID: "trainer-2", Name: "B"}))

	players, err := s.ListPlayersByTrainer(ctx, "trainer-1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, model.PlayerID("player-1"), players[0].ID)

	players, err = s.ListPlayersByTrainer(ctx, "trainer-3")
	require.NoError(t, err)
	assert.Empty(t, players)
}
