package model

import "time"

// OrganizationID uniquely identifies an organization
type OrganizationID string

// Organization is a team or club a trainer manages players under.
// TrainerID is the owning trainer; only that trainer may see or link
// players to the organization.
type Organization struct {
	ID        OrganizationID
	TrainerID TrainerID
	Name      string
	CreatedAt time.Time
}
