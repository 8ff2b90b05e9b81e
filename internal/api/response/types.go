package response

import (
	"time"

	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/player"
	"github.com/headcheck/headcheck/internal/services/screening"
)

// dateLayout is how dates of birth are rendered for the client
const dateLayout = "2006-01-02"

// Message is a plain acknowledgement response
type Message struct {
	Message string `json:"message"`
}

// CheckAuth is the response for GET /api/users/check-auth
type CheckAuth struct {
	Username string `json:"username"`
}

// Organization represents an organization in API responses
type Organization struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrganizationFromModel converts a model.Organization
func OrganizationFromModel(o *model.Organization) Organization {
	return Organization{
		ID:        string(o.ID),
		TrainerID: string(o.TrainerID),
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
	}
}

// Address is a player's mailing address
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// EmergencyContact is a player's emergency contact
type EmergencyContact struct {
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// Player represents a player in API responses. Organization is set on
// list responses where the linked organization is resolved for display.
type Player struct {
	ID             string           `json:"id"`
	TrainerID      string           `json:"trainerId"`
	OrganizationID string           `json:"organizationId"`
	Name           string           `json:"name"`
	DOB            string           `json:"dob"`
	Age            int              `json:"age,omitempty"`
	Height         string           `json:"height,omitempty"`
	Weight         string           `json:"weight,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	ProfilePicURL  string           `json:"profilePicUrl,omitempty"`
	Address        Address          `json:"address"`
	Emergency      EmergencyContact `json:"emergency"`
	Status         string           `json:"status"`
	MedicalNotes   string           `json:"medicalNotes,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	Organization   *Organization    `json:"organization,omitempty"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:             string(p.ID),
		TrainerID:      string(p.TrainerID),
		OrganizationID: string(p.OrganizationID),
		Name:           p.Name,
		DOB:            p.DOB.Format(dateLayout),
		Age:            p.Age,
		Height:         p.Height,
		Weight:         p.Weight,
		Email:          p.Email,
		Phone:          p.Phone,
		ProfilePicURL:  p.ProfilePicURL,
		Address:        Address(p.Address),
		Emergency:      EmergencyContact(p.Emergency),
		Status:         string(p.Status),
		MedicalNotes:   p.MedicalNotes,
		CreatedAt:      p.CreatedAt,
	}
}

// PlayerWithOrganizationFromModel converts a player with its resolved
// organization
func PlayerWithOrganizationFromModel(pwo player.PlayerWithOrganization) Player {
	p := PlayerFromModel(pwo.Player)
	if pwo.Organization != nil {
		org := OrganizationFromModel(pwo.Organization)
		p.Organization = &org
	}
	return p
}

// TestSubject is the player projection confirmed before a test run
type TestSubject struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	OrganizationName string `json:"organizationName"`
}

// StartTest wraps the test subject, matching the shape the client polls
type StartTest struct {
	Player TestSubject `json:"player"`
}

// StartTestFromSubject converts a screening.TestSubject
func StartTestFromSubject(s *screening.TestSubject) StartTest {
	return StartTest{
		Player: TestSubject{
			ID:               string(s.PlayerID),
			Name:             s.Name,
			DOB:              s.DOB,
			OrganizationName: s.OrganizationName,
		},
	}
}
