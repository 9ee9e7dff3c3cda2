package repository

import (
	"context"
	"fmt"
	"time"

	"risun-backend/dal"
	"risun-backend/models"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

// LocationRepository implements LocationRepositoryInterface
type LocationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *LocationRepository {
	return &LocationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *LocationRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_locations"
}

// CreateLocation inserts a new location owned by the given organization.
func (r *LocationRepository) CreateLocation(ctx context.Context, loc *models.Location) (*models.Location, error) {
	loc.ID = utils.GenerateUUID()
	loc.CreatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.tableName(), loc); err != nil {
		r.logger.Errorf("Failed to create location: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInsertFailed, err)
	}

	r.logger.Infof("Location created successfully: %s", loc.ID)
	return loc, nil
}

// ListLocationsByOrganization returns all locations owned by the
// organization. No ordering guarantee, no pagination.
func (r *LocationRepository) ListLocationsByOrganization(ctx context.Context, organizationID string) ([]*models.Location, error) {
	var locations []*models.Location
	err := r.db.QueryByIndex(ctx, r.tableName(), "organization-index", "organization_id", organizationID, &locations)
	if err != nil {
		r.logger.Errorf("Failed to list locations: %v", err)
		return nil, err
	}

	if locations == nil {
		locations = []*models.Location{}
	}

	return locations, nil
}

// DeleteLocationByName removes one location matching the name within the
// organization. Names are not unique; when duplicates exist, whichever match
// the index returns first is deleted.
func (r *LocationRepository) DeleteLocationByName(ctx context.Context, organizationID, locationName string) error {
	locations, err := r.ListLocationsByOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	for _, loc := range locations {
		if loc.LocationName == locationName {
			if err := r.db.DeleteItem(ctx, r.tableName(), "id", loc.ID); err != nil {
				r.logger.Errorf("Failed to delete location %s: %v", loc.ID, err)
				return err
			}
			r.logger.Infof("Location deleted successfully: %s", loc.ID)
			return nil
		}
	}

	return ErrLocationNotFound
}
