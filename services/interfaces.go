package services

import (
	"context"

	"risun-backend/models"
)

// AuthServiceInterface defines the contract for the auth service
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Organization, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.Organization, error)
}

// LocationServiceInterface defines the contract for the location service
type LocationServiceInterface interface {
	AddLocation(ctx context.Context, email string, req *models.AddLocationRequest) (*models.Location, error)
	ListLocations(ctx context.Context, email string) ([]*models.Location, error)
	DeleteLocation(ctx context.Context, email, locationName string) error
}
