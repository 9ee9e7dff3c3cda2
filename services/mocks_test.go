package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"risun-backend/models"
)

// MockOrganizationRepository is a testify mock for the organization repository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	args := m.Called(ctx, org)
	if out := args.Get(0); out != nil {
		return out.(*models.Organization), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByEmail(ctx context.Context, email string) (*models.Organization, error) {
	args := m.Called(ctx, email)
	if out := args.Get(0); out != nil {
		return out.(*models.Organization), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByEmailAndName(ctx context.Context, email, organizationName string) (*models.Organization, error) {
	args := m.Called(ctx, email, organizationName)
	if out := args.Get(0); out != nil {
		return out.(*models.Organization), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLocationRepository is a testify mock for the location repository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) CreateLocation(ctx context.Context, loc *models.Location) (*models.Location, error) {
	args := m.Called(ctx, loc)
	if out := args.Get(0); out != nil {
		return out.(*models.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationRepository) ListLocationsByOrganization(ctx context.Context, organizationID string) ([]*models.Location, error) {
	args := m.Called(ctx, organizationID)
	if out := args.Get(0); out != nil {
		return out.([]*models.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationRepository) DeleteLocationByName(ctx context.Context, organizationID, locationName string) error {
	args := m.Called(ctx, organizationID, locationName)
	return args.Error(0)
}
