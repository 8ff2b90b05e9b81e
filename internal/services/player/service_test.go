package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/headcheck/headcheck/internal/dependencies/mocks"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/organization"
	"github.com/headcheck/headcheck/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	orgs    *organization.Service
	service *Service
	ctx     context.Context

	org      *model.Organization
	otherOrg *model.Organization
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.orgs = organization.New(s.storage, clk)
	s.service = New(s.storage, clk)
	s.ctx = context.Background()

	var err error
	s.org, err = s.orgs.Create(s.ctx, "trainer-1", "Wildcats")
	s.Require().NoError(err)
	s.otherOrg, err = s.orgs.Create(s.ctx, "trainer-2", "Falcons")
	s.Require().NoError(err)
}

func (s *ServiceSuite) validParams() CreateParams {
	return CreateParams{
		OrganizationID: s.org.ID,
		Name:           "Jordan Smith",
		DOB:            time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	player, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	s.NotEmpty(player.ID)
	s.Equal(model.TrainerID("trainer-1"), player.TrainerID)
	s.Equal(s.org.ID, player.OrganizationID)
	s.Equal(model.StatusActive, player.Status)
}

func (s *ServiceSuite) TestCreateRequiresName() {
	params := s.validParams()
	params.Name = ""
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, ErrNameRequired)
}

func (s *ServiceSuite) TestCreateRequiresDOB() {
	params := s.validParams()
	params.DOB = time.Time{}
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, ErrDOBRequired)
}

func (s *ServiceSuite) TestCreateRequiresOrganization() {
	params := s.validParams()
	params.OrganizationID = ""
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, ErrOrganizationRequired)
}

func (s *ServiceSuite) TestCreateRejectsUnknownStatus() {
	params := s.validParams()
	params.Status = "benched"
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, model.ErrInvalidStatus)
}

func (s *ServiceSuite) TestCreateRejectsNonOwnedOrganization() {
	params := s.validParams()
	params.OrganizationID = s.otherOrg.ID
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, model.ErrOrganizationNotFound)
}

func (s *ServiceSuite) TestCreateRejectsMissingOrganization() {
	params := s.validParams()
	params.OrganizationID = "nonexistent"
	_, err := s.service.Create(s.ctx, "trainer-1", params)
	s.ErrorIs(err, model.ErrOrganizationNotFound)
}

// List tests

func (s *ServiceSuite) TestListIncludesCreatedPlayerExactlyOnce() {
	created, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	players, err := s.service.ListByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(created.ID, players[0].Player.ID)
}

func (s *ServiceSuite) TestListResolvesOrganization() {
	_, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	players, err := s.service.ListByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Require().NotNil(players[0].Organization)
	s.Equal("Wildcats", players[0].Organization.Name)
}

func (s *ServiceSuite) TestListNeverReturnsOtherTrainersPlayers() {
	otherParams := CreateParams{
		OrganizationID: s.otherOrg.ID,
		Name:           "Sam Jones",
		DOB:            time.Date(2004, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := s.service.Create(s.ctx, "trainer-2", otherParams)
	s.Require().NoError(err)

	players, err := s.service.ListByTrainer(s.ctx, "trainer-1")
	s.Require().NoError(err)
	s.Empty(players)
}

// Update tests

func (s *ServiceSuite) TestUpdateAppliesPartialFields() {
	created, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	status := model.StatusConcussion
	notes := "baseline test pending"
	updated, err := s.service.Update(s.ctx, "trainer-1", created.ID, model.PlayerUpdate{
		Status:       &status,
		MedicalNotes: &notes,
	})
	s.Require().NoError(err)

	s.Equal(model.StatusConcussion, updated.Status)
	s.Equal(notes, updated.MedicalNotes)
	// Untouched fields survive
	s.Equal(created.Name, updated.Name)
	s.Equal(created.DOB, updated.DOB)
}

func (s *ServiceSuite) TestUpdateRejectsUnknownStatus() {
	created, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	bad := model.PlayerStatus("benched")
	_, err = s.service.Update(s.ctx, "trainer-1", created.ID, model.PlayerUpdate{Status: &bad})
	s.ErrorIs(err, model.ErrInvalidStatus)
}

func (s *ServiceSuite) TestUpdateFailsForMissingPlayer() {
	name := "New Name"
	_, err := s.service.Update(s.ctx, "trainer-1", "nonexistent", model.PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdateFailsForNonOwnedPlayerAndLeavesItUnchanged() {
	created, err := s.service.Create(s.ctx, "trainer-1", s.validParams())
	s.Require().NoError(err)

	name := "Hijacked"
	_, err = s.service.Update(s.ctx, "trainer-2", created.ID, model.PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)

	stored, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Jordan Smith", stored.Name)
}
