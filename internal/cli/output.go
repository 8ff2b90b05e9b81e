package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Message:
		fmt.Println(v.Message)
	case CheckAuth:
		o.printCheckAuth(v)
	case Organization:
		o.printOrganization(v)
	case []Organization:
		o.printOrganizations(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case StartTest:
		o.printStartTest(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Message response type (matches API)
type Message struct {
	Message string `json:"message"`
}

// CheckAuth response type
type CheckAuth struct {
	Username string `json:"username"`
}

// Organization response type
type Organization struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address response type
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// EmergencyContact response type
type EmergencyContact struct {
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// Player response type
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

// TestSubject response type
type TestSubject struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	OrganizationName string `json:"organizationName"`
}

// StartTest response type
type StartTest struct {
	Player TestSubject `json:"player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCheckAuth(c CheckAuth) {
	fmt.Printf("Logged in as: %s\n", c.Username)
}

func (o *Output) printOrganization(org Organization) {
	fmt.Printf("Organization: %s (%s)\n", org.Name, org.ID)
}

func (o *Output) printOrganizations(orgs []Organization) {
	if len(orgs) == 0 {
		fmt.Println("No organizations")
		return
	}
	fmt.Printf("Organizations (%d):\n", len(orgs))
	for _, org := range orgs {
		fmt.Printf("  - %s (%s)\n", org.Name, org.ID)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("DOB: %s\n", p.DOB)
	fmt.Printf("Status: %s\n", p.Status)
	if p.Organization != nil {
		fmt.Printf("Organization: %s\n", p.Organization.Name)
	} else if p.OrganizationID != "" {
		fmt.Printf("Organization: %s\n", p.OrganizationID)
	}
	if p.Email != "" {
		fmt.Printf("Email: %s\n", p.Email)
	}
	if p.Phone != "" {
		fmt.Printf("Phone: %s\n", p.Phone)
	}
	if p.Emergency.ContactName != "" {
		fmt.Printf("Emergency: %s (%s)\n", p.Emergency.ContactName, p.Emergency.ContactPhone)
	}
	if p.MedicalNotes != "" {
		fmt.Printf("Notes: %s\n", p.MedicalNotes)
	}
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		orgName := p.OrganizationID
		if p.Organization != nil {
			orgName = p.Organization.Name
		}
		fmt.Printf("  - %s (%s) - %s [%s]\n", p.Name, p.ID, orgName, p.Status)
	}
}

func (o *Output) printStartTest(s StartTest) {
	fmt.Printf("Test started for: %s (%s)\n", s.Player.Name, s.Player.ID)
	fmt.Printf("DOB: %s\n", s.Player.DOB)
	fmt.Printf("Organization: %s\n", s.Player.OrganizationName)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
