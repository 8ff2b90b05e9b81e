package screening

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/headcheck/headcheck/internal/dependencies/mocks"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/organization"
	"github.com/headcheck/headcheck/internal/services/player"
	"github.com/headcheck/headcheck/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context

	player *model.Player
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage)
	s.ctx = context.Background()

	orgs := organization.New(s.storage, clk)
	org, err := orgs.Create(s.ctx, "trainer-1", "Wildcats")
	s.Require().NoError(err)

	players := player.New(s.storage, clk)
	s.player, err = players.Create(s.ctx, "trainer-1", player.CreateParams{
		OrganizationID: org.ID,
		Name:           "Jordan Smith",
		DOB:            time.Date(2005, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestStartTestReturnsProjection() {
	subject, err := s.service.StartTest(s.ctx, "trainer-1", s.player.ID)
	s.Require().NoError(err)

	s.Equal(s.player.ID, subject.PlayerID)
	s.Equal("Jordan Smith", subject.Name)
	s.Equal("2005-06-15", subject.DOB)
	s.Equal("Wildcats", subject.OrganizationName)
}

func (s *ServiceSuite) TestStartTestFailsForMissingPlayer() {
	_, err := s.service.StartTest(s.ctx, "trainer-1", "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestStartTestFailsForNonOwnedPlayer() {
	_, err := s.service.StartTest(s.ctx, "trainer-2", s.player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
