package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"

	"risun-backend/infrastructure"
	"risun-backend/models"
)

// ensureTables creates every required table that does not already exist.
// Creation is retried with a fixed delay up to MaxRetries. Returns the
// fully qualified names of the tables it created.
func (s *Service) ensureTables(ctx context.Context, result *models.ExecutionResult) ([]string, error) {
	var created []string

	for _, name := range s.config.RequiredTables {
		fullName := s.appConfig.DynamoDBTablePrefix + "_" + name

		exists, err := s.tableExists(ctx, fullName)
		if err != nil {
			return created, fmt.Errorf("failed to check table %s: %w", fullName, err)
		}
		if exists {
			s.logger.Debugf("Table %s already exists", fullName)
			continue
		}

		schema, err := infrastructure.GetTableSchema(name)
		if err != nil {
			return created, err
		}
		input := infrastructure.BuildCreateTableInput(schema, s.appConfig.DynamoDBTablePrefix)

		var lastErr error
		for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
			if attempt > 0 {
				result.Status = models.StatusRetrying
				result.RetryCount++
				s.logger.Warnf("Retrying create of table %s (attempt %d/%d)", fullName, attempt, s.config.MaxRetries)
				time.Sleep(s.config.RetryDelay)
			}

			if lastErr = s.db.CreateTable(ctx, input); lastErr == nil {
				break
			}
		}
		if lastErr != nil {
			return created, fmt.Errorf("failed to create table %s: %w", fullName, lastErr)
		}

		s.logger.Infof("Created table %s", fullName)
		created = append(created, fullName)
	}

	return created, nil
}

// TeardownTables deletes every required table that exists. Reset path for
// local and test environments; refuses to run against production.
func (s *Service) TeardownTables(ctx context.Context) error {
	if s.config.Environment == "production" {
		return fmt.Errorf("refusing to delete tables in production")
	}

	for _, name := range s.config.RequiredTables {
		fullName := s.appConfig.DynamoDBTablePrefix + "_" + name

		exists, err := s.tableExists(ctx, fullName)
		if err != nil {
			return fmt.Errorf("failed to check table %s: %w", fullName, err)
		}
		if !exists {
			continue
		}

		input := &dynamodb.DeleteTableInput{TableName: aws.String(fullName)}
		if err := s.db.DeleteTable(ctx, input); err != nil {
			return fmt.Errorf("failed to delete table %s: %w", fullName, err)
		}
		s.logger.Infof("Deleted table %s", fullName)
	}

	return nil
}

// tableExists distinguishes a missing table from a real API failure using
// the typed smithy error code.
func (s *Service) tableExists(ctx context.Context, tableName string) (bool, error) {
	_, err := s.db.DescribeTable(ctx, tableName)
	if err == nil {
		return true, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
		return false, nil
	}

	return false, err
}
