package redis

import (
	"fmt"

	"github.com/headcheck/headcheck/internal/model"
)

// Key prefix for all trainer-record data
const keyPrefix = "headcheck"

// trainerKey returns the Redis key for a Trainer
func trainerKey(id model.TrainerID) string {
	return fmt.Sprintf("%s:trainer:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> trainer_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// organizationKey returns the Redis key for an Organization
func organizationKey(id model.OrganizationID) string {
	return fmt.Sprintf("%s:organization:%s", keyPrefix, id)
}

// orgsForTrainerIndexKey returns the Redis key for the SET of a trainer's organizations
func orgsForTrainerIndexKey(trainerID model.TrainerID) string {
	return fmt.Sprintf("%s:idx:orgs_for_trainer:%s", keyPrefix, trainerID)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForTrainerIndexKey returns the Redis key for the SET of a trainer's players
func playersForTrainerIndexKey(trainerID model.TrainerID) string {
	return fmt.Sprintf("%s:idx:players_for_trainer:%s", keyPrefix, trainerID)
}
