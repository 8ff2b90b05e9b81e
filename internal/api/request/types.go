// Package request defines the JSON request bodies accepted by the API.
// Field names match what the browser client sends.
package request

// RegisterRequest is the body for POST /api/users/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /api/users/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateOrganizationRequest is the body for POST /api/organizations
type CreateOrganizationRequest struct {
	Name string `json:"name"`
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

// CreatePlayerRequest is the body for POST /api/players.
// DOB is a date in YYYY-MM-DD form.
type CreatePlayerRequest struct {
	Name           string           `json:"name"`
	DOB            string           `json:"dob"`
	Age            int              `json:"age"`
	Height         string           `json:"height"`
	Weight         string           `json:"weight"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	ProfilePicURL  string           `json:"profilePicUrl"`
	Address        Address          `json:"address"`
	Emergency      EmergencyContact `json:"emergency"`
	OrganizationID string           `json:"organizationId"`
	Status         string           `json:"status"`
	MedicalNotes   string           `json:"medicalNotes"`
}

// UpdatePlayerRequest is the body for PUT /api/players/{id}.
// Only present fields are applied; the organization link and owner
// cannot be changed.
type UpdatePlayerRequest struct {
	Name          *string           `json:"name"`
	DOB           *string           `json:"dob"`
	Age           *int              `json:"age"`
	Height        *string           `json:"height"`
	Weight        *string           `json:"weight"`
	Email         *string           `json:"email"`
	Phone         *string           `json:"phone"`
	ProfilePicURL *string           `json:"profilePicUrl"`
	Address       *Address          `json:"address"`
	Emergency     *EmergencyContact `json:"emergency"`
	Status        *string           `json:"status"`
	MedicalNotes  *string           `json:"medicalNotes"`
}

// StartTestRequest is the body for POST /api/testing/start
type StartTestRequest struct {
	PlayerID string `json:"playerId"`
}
