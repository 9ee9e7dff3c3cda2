package services

import (
	"context"

	"risun-backend/models"
	"risun-backend/repository"
	"risun-backend/utils/logger"
)

// LocationService adds, lists and deletes saved locations scoped to the
// organization resolved from an email address. Resolving the organization
// and acting on the location table are two sequential store calls with no
// transaction between them.
type LocationService struct {
	orgRepo repository.OrganizationRepositoryInterface
	locRepo repository.LocationRepositoryInterface
	logger  logger.Logger
}

// NewLocationService creates a new location service
func NewLocationService(orgRepo repository.OrganizationRepositoryInterface, locRepo repository.LocationRepositoryInterface, log logger.Logger) *LocationService {
	return &LocationService{
		orgRepo: orgRepo,
		locRepo: locRepo,
		logger:  log,
	}
}

// AddLocation inserts a new location owned by the organization registered
// under the given email.
func (s *LocationService) AddLocation(ctx context.Context, email string, req *models.AddLocationRequest) (*models.Location, error) {
	org, err := s.orgRepo.GetOrganizationByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	loc := &models.Location{
		OrganizationID: org.ID,
		LocationName:   req.LocationName,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
	}

	return s.locRepo.CreateLocation(ctx, loc)
}

// ListLocations returns every saved location of the organization registered
// under the given email.
func (s *LocationService) ListLocations(ctx context.Context, email string) ([]*models.Location, error) {
	org, err := s.orgRepo.GetOrganizationByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.locRepo.ListLocationsByOrganization(ctx, org.ID)
}

// DeleteLocation removes one location matching the name within the caller's
// organization.
func (s *LocationService) DeleteLocation(ctx context.Context, email, locationName string) error {
	org, err := s.orgRepo.GetOrganizationByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.locRepo.DeleteLocationByName(ctx, org.ID, locationName)
}
