package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"risun-backend/dal"
	"risun-backend/models"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

// OrganizationRepository implements OrganizationRepositoryInterface
type OrganizationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OrganizationRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_organizations"
}

// CreateOrganization inserts a new organization after checking that the email
// is not already registered. The check and the insert are two separate store
// calls; concurrent registrations with the same email can both pass the check.
func (r *OrganizationRepository) CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	existing, err := r.GetOrganizationByEmail(ctx, org.Email)
	if err != nil && !errors.Is(err, ErrOrganizationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	org.ID = utils.GenerateUUID()
	org.CreatedAt = time.Now()

	if err := r.db.PutItem(ctx, r.tableName(), org); err != nil {
		r.logger.Errorf("Failed to create organization: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInsertFailed, err)
	}

	r.logger.Infof("Organization created successfully: %s", org.ID)
	return org, nil
}

// GetOrganizationByEmail resolves an organization from its unique email.
func (r *OrganizationRepository) GetOrganizationByEmail(ctx context.Context, email string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
	}, &org)
	if err != nil {
		r.logger.Errorf("Failed to get organization by email: %v", err)
		return nil, err
	}

	if org.ID == "" {
		return nil, ErrOrganizationNotFound
	}

	return &org, nil
}

// GetOrganizationByEmailAndName fetches the organization matching both the
// email and the exact organization name, the lookup key used by login.
func (r *OrganizationRepository) GetOrganizationByEmailAndName(ctx context.Context, email, organizationName string) (*models.Organization, error) {
	var orgs []*models.Organization
	err := r.db.QueryByIndex(ctx, r.tableName(), "email-index", "email", email, &orgs)
	if err != nil {
		r.logger.Errorf("Failed to get organization by email: %v", err)
		return nil, err
	}

	for _, org := range orgs {
		if org.OrganizationName == organizationName {
			return org, nil
		}
	}

	return nil, ErrOrganizationNotFound
}
