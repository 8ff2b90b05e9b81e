package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/headcheck/headcheck/internal/dependencies/mocks"
	"github.com/headcheck/headcheck/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.Secret = []byte("test-secret")
	s.service = New(s.storage, s.clock, cfg)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("coach1", session.Trainer.Username)
	s.NotEmpty(session.TrainerID)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	_, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	trainer, err := s.storage.GetTrainerByUsername(s.ctx, "coach1")
	s.Require().NoError(err)
	s.NotEmpty(trainer.PasswordHash)
	s.NotEqual("pw123", trainer.PasswordHash)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameTaken() {
	_, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "coach1", "different")
	s.ErrorIs(err, ErrUsernameTaken)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal(registered.TrainerID, session.TrainerID)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "coach1", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUsername() {
	// Unknown username and wrong password are indistinguishable
	_, err := s.service.Login(s.ctx, "nobody", "pw123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// VerifySession tests

func (s *ServiceSuite) TestVerifySessionBindsSameTrainer() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	trainer, err := s.service.VerifySession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.TrainerID, trainer.ID)
	s.Equal("coach1", trainer.Username)
}

func (s *ServiceSuite) TestVerifySessionRejectsTamperedToken() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	tampered := []byte(session.Token)
	tampered[len(tampered)/2] ^= 0x01

	_, err = s.service.VerifySession(s.ctx, string(tampered))
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifySessionRejectsGarbage() {
	_, err := s.service.VerifySession(s.ctx, "not.a.token")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifySessionRejectsExpiredToken() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	// Still valid just inside the window
	s.clock.Advance(3*24*time.Hour - time.Minute)
	_, err = s.service.VerifySession(s.ctx, session.Token)
	s.Require().NoError(err)

	// Invalid just past it
	s.clock.Advance(2 * time.Minute)
	_, err = s.service.VerifySession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifySessionRejectsWrongSecret() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	other := New(s.storage, s.clock, Config{Secret: []byte("other-secret")})
	_, err = other.VerifySession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifySessionRejectsMissingTrainer() {
	session, err := s.service.Register(s.ctx, "coach1", "pw123")
	s.Require().NoError(err)

	// Same secret, but a store where the trainer does not exist
	other := New(memory.New(), s.clock, Config{Secret: []byte("test-secret")})
	_, err = other.VerifySession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}
