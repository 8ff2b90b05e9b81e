package model

import "time"

// PlayerID uniquely identifies a player record
type PlayerID string

// PlayerStatus is the trainer-settable condition of a player.
// Any status may move to any other status.
type PlayerStatus string

const (
	StatusActive     PlayerStatus = "active"
	StatusInjured    PlayerStatus = "injured"
	StatusConcussion PlayerStatus = "concussion"
	StatusRecovery   PlayerStatus = "recovery"
)

// ValidStatus reports whether s is one of the known player statuses
func ValidStatus(s PlayerStatus) bool {
	switch s {
	case StatusActive, StatusInjured, StatusConcussion, StatusRecovery:
		return true
	}
	return false
}

// Address is a player's mailing address
type Address struct {
	Street string
	City   string
	Zip    string
}

// EmergencyContact is who to call when a player is hurt
type EmergencyContact struct {
	ContactName  string
	ContactPhone string
}

// Player is an athlete tracked by a trainer. TrainerID is the owning
// trainer; OrganizationID links the player to one of that trainer's
// organizations.
type Player struct {
	ID             PlayerID
	TrainerID      TrainerID
	OrganizationID OrganizationID
	Name           string
	DOB            time.Time
	Age            int
	Height         string
	Weight         string
	Email          string
	Phone          string
	ProfilePicURL  string
	Address        Address
	Emergency      EmergencyContact
	Status         PlayerStatus
	MedicalNotes   string
	CreatedAt      time.Time
}

// PlayerUpdate is a partial update to a Player. Nil fields are left
// untouched; the owner and organization link cannot be changed through
// an update.
type PlayerUpdate struct {
	Name          *string
	DOB           *time.Time
	Age           *int
	Height        *string
	Weight        *string
	Email         *string
	Phone         *string
	ProfilePicURL *string
	Address       *Address
	Emergency     *EmergencyContact
	Status        *PlayerStatus
	MedicalNotes  *string
}

// Apply merges the update into the player in place
func (u PlayerUpdate) Apply(p *Player) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.DOB != nil {
		p.DOB = *u.DOB
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.ProfilePicURL != nil {
		p.ProfilePicURL = *u.ProfilePicURL
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Emergency != nil {
		p.Emergency = *u.Emergency
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.MedicalNotes != nil {
		p.MedicalNotes = *u.MedicalNotes
	}
}
