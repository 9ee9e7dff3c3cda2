package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"risun-backend/models"
	"risun-backend/repository"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	orgRepo *MockOrganizationRepository
	svc     *AuthService
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.orgRepo = new(MockOrganizationRepository)
	s.svc = NewAuthService(s.orgRepo, logger.NewLogger("error", "text"))
}

func (s *AuthServiceTestSuite) TestRegisterHashesPassword() {
	var stored *models.Organization
	s.orgRepo.On("CreateOrganization", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Organization)
		}).
		Return(&models.Organization{ID: "org-1"}, nil)

	_, err := s.svc.Register(context.Background(), &models.RegisterRequest{
		OrganizationName: "Acme",
		Email:            "a@acme.io",
		Password:         "Secret123",
		Location:         "NY",
	})

	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.NotEqual("Secret123", stored.PasswordHash)
	s.True(utils.CheckPassword(stored.PasswordHash, "Secret123"))
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	s.orgRepo.On("CreateOrganization", mock.Anything, mock.Anything).
		Return(nil, repository.ErrDuplicateEmail)

	_, err := s.svc.Register(context.Background(), &models.RegisterRequest{
		OrganizationName: "Acme",
		Email:            "a@acme.io",
		Password:         "Secret123",
		Location:         "NY",
	})

	s.ErrorIs(err, repository.ErrDuplicateEmail)
}

func (s *AuthServiceTestSuite) TestLoginSuccess() {
	hash, err := utils.HashPassword("Secret123")
	s.Require().NoError(err)

	s.orgRepo.On("GetOrganizationByEmailAndName", mock.Anything, "a@acme.io", "Acme").
		Return(&models.Organization{
			ID:               "org-1",
			Email:            "a@acme.io",
			OrganizationName: "Acme",
			PasswordHash:     hash,
		}, nil)

	org, err := s.svc.Login(context.Background(), &models.LoginRequest{
		OrganizationName: "Acme",
		Email:            "a@acme.io",
		Password:         "Secret123",
	})

	s.Require().NoError(err)
	s.Equal("org-1", org.ID)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := utils.HashPassword("Secret123")
	s.Require().NoError(err)

	s.orgRepo.On("GetOrganizationByEmailAndName", mock.Anything, "a@acme.io", "Acme").
		Return(&models.Organization{PasswordHash: hash}, nil)

	_, err = s.svc.Login(context.Background(), &models.LoginRequest{
		OrganizationName: "Acme",
		Email:            "a@acme.io",
		Password:         "wrong",
	})

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginUnknownPair() {
	s.orgRepo.On("GetOrganizationByEmailAndName", mock.Anything, "a@acme.io", "NotAcme").
		Return(nil, repository.ErrOrganizationNotFound)

	_, err := s.svc.Login(context.Background(), &models.LoginRequest{
		OrganizationName: "NotAcme",
		Email:            "a@acme.io",
		Password:         "Secret123",
	})

	s.ErrorIs(err, repository.ErrOrganizationNotFound)
}
