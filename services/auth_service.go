package services

import (
	"context"
	"errors"

	"risun-backend/models"
	"risun-backend/repository"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

// ErrInvalidCredentials is returned by Login when the password does not
// match the stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService validates registration uniqueness, hashes passwords and
// verifies login credentials.
type AuthService struct {
	orgRepo repository.OrganizationRepositoryInterface
	logger  logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(orgRepo repository.OrganizationRepositoryInterface, log logger.Logger) *AuthService {
	return &AuthService{
		orgRepo: orgRepo,
		logger:  log,
	}
}

// Register hashes the password and inserts a new organization. A registered
// email is rejected with repository.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Organization, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Errorf("Failed to hash password: %v", err)
		return nil, err
	}

	org := &models.Organization{
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		PasswordHash:     hash,
		Location:         req.Location,
	}

	return s.orgRepo.CreateOrganization(ctx, org)
}

// Login fetches the organization by the (email, organizationName) pair and
// verifies the password against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Organization, error) {
	org, err := s.orgRepo.GetOrganizationByEmailAndName(ctx, req.Email, req.OrganizationName)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(org.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return org, nil
}
