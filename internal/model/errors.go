package model

import "errors"

// Common errors used across the application.
// Not-found errors deliberately cover "exists but owned by another
// trainer" as well, so a caller cannot probe for other trainers' records.
var (
	// Trainer errors
	ErrTrainerNotFound = errors.New("trainer not found")

	// Organization errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidStatus  = errors.New("invalid player status")
)
