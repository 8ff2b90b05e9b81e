package model

import "time"

// TrainerID uniquely identifies a trainer account across the system
type TrainerID string

// Trainer is an athletic trainer account. The username is the login
// identifier and is immutable after registration.
type Trainer struct {
	ID           TrainerID
	Username     string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
