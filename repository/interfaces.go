package repository

import (
	"context"

	"risun-backend/models"
)

// OrganizationRepositoryInterface defines the contract for organization storage
type OrganizationRepositoryInterface interface {
	CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error)
	GetOrganizationByEmail(ctx context.Context, email string) (*models.Organization, error)
	GetOrganizationByEmailAndName(ctx context.Context, email, organizationName string) (*models.Organization, error)
}

// LocationRepositoryInterface defines the contract for location storage
type LocationRepositoryInterface interface {
	CreateLocation(ctx context.Context, loc *models.Location) (*models.Location, error)
	ListLocationsByOrganization(ctx context.Context, organizationID string) ([]*models.Location, error)
	DeleteLocationByName(ctx context.Context, organizationID, locationName string) error
}
