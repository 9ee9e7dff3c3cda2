package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"risun-backend/models"
	"risun-backend/utils/logger"
)

// MockTableClient is a testify mock for the table management client
type MockTableClient struct {
	mock.Mock
}

func (m *MockTableClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockTableClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.DescribeTableOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTableClient) DeleteTable(ctx context.Context, input *dynamodb.DeleteTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func notFoundErr() error {
	return &smithy.GenericAPIError{
		Code:    "ResourceNotFoundException",
		Message: "Requested resource not found",
	}
}

type WorkerTestSuite struct {
	suite.Suite
	db  *MockTableClient
	svc *Service
}

func TestWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) SetupTest() {
	s.db = new(MockTableClient)

	dir := s.T().TempDir()
	appCfg := &models.Config{
		AppEnv:              "test",
		DynamoDBTablePrefix: "test",
		Tables:              []string{"organizations", "locations"},
	}
	workerCfg := &models.WorkerConfig{
		CronSchedule:   "@every 6h",
		LockTimeout:    time.Minute,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
		Environment:    "test",
		RequiredTables: appCfg.Tables,
		LockFilePath:   filepath.Join(dir, "provisioner.lock"),
		StatusFilePath: filepath.Join(dir, "status.json"),
		RunOnce:        true,
	}

	s.svc = NewService(workerCfg, appCfg, s.db, logger.NewLogger("error", "text"))
}

func (s *WorkerTestSuite) TestProvisioningCreatesMissingTables() {
	s.db.On("DescribeTable", mock.Anything, "test_organizations").Return(nil, notFoundErr())
	s.db.On("DescribeTable", mock.Anything, "test_locations").Return(nil, notFoundErr())
	s.db.On("CreateTable", mock.Anything, mock.Anything).Return(nil)

	result := s.svc.RunProvisioning(context.Background())

	s.True(result.Success)
	s.Equal(models.StatusCompleted, result.Status)
	s.ElementsMatch([]string{"test_organizations", "test_locations"}, result.TablesCreated)
	s.db.AssertNumberOfCalls(s.T(), "CreateTable", 2)
}

func (s *WorkerTestSuite) TestProvisioningSkipsExistingTables() {
	s.db.On("DescribeTable", mock.Anything, mock.Anything).Return(&dynamodb.DescribeTableOutput{}, nil)

	result := s.svc.RunProvisioning(context.Background())

	s.True(result.Success)
	s.Empty(result.TablesCreated)
	s.db.AssertNotCalled(s.T(), "CreateTable", mock.Anything, mock.Anything)
}

func (s *WorkerTestSuite) TestProvisioningRetriesCreateFailure() {
	s.db.On("DescribeTable", mock.Anything, "test_organizations").Return(nil, notFoundErr())
	s.db.On("CreateTable", mock.Anything, mock.Anything).Return(notFoundErr())

	result := s.svc.RunProvisioning(context.Background())

	s.False(result.Success)
	s.Equal(models.StatusFailed, result.Status)
	s.NotEmpty(result.ErrorMessage)
	// Initial attempt plus one retry per MaxRetries.
	s.db.AssertNumberOfCalls(s.T(), "CreateTable", 2)
}

func (s *WorkerTestSuite) TestProvisioningSurfacesDescribeFailure() {
	s.db.On("DescribeTable", mock.Anything, "test_organizations").
		Return(nil, &smithy.GenericAPIError{Code: "InternalServerError"})

	result := s.svc.RunProvisioning(context.Background())

	s.False(result.Success)
	s.db.AssertNotCalled(s.T(), "CreateTable", mock.Anything, mock.Anything)
}

func (s *WorkerTestSuite) TestStatusFileRoundtrip() {
	s.db.On("DescribeTable", mock.Anything, mock.Anything).Return(&dynamodb.DescribeTableOutput{}, nil)

	ran := s.svc.RunProvisioning(context.Background())
	s.Require().True(ran.Success)

	loaded, err := s.svc.LoadStatus()
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal(models.StatusCompleted, loaded.Status)
	s.Equal("test", loaded.Environment)
}

func (s *WorkerTestSuite) TestStopIsIdempotent() {
	s.svc.Stop()
	s.NotPanics(func() { s.svc.Stop() })
}

func (s *WorkerTestSuite) TestTeardownDeletesExistingTables() {
	s.db.On("DescribeTable", mock.Anything, "test_organizations").Return(&dynamodb.DescribeTableOutput{}, nil)
	s.db.On("DescribeTable", mock.Anything, "test_locations").Return(nil, notFoundErr())
	s.db.On("DeleteTable", mock.Anything, mock.Anything).Return(nil)

	err := s.svc.TeardownTables(context.Background())

	s.Require().NoError(err)
	// Only the table that exists gets deleted.
	s.db.AssertNumberOfCalls(s.T(), "DeleteTable", 1)
}

func (s *WorkerTestSuite) TestTeardownRefusesProduction() {
	s.svc.config.Environment = "production"

	err := s.svc.TeardownTables(context.Background())

	s.Error(err)
	s.db.AssertNotCalled(s.T(), "DeleteTable", mock.Anything, mock.Anything)
}

func (s *WorkerTestSuite) TestLockBlocksSecondRun() {
	first, err := s.svc.acquireLock()
	s.Require().NoError(err)

	_, err = s.svc.acquireLock()
	s.Error(err)

	s.svc.releaseLock(first)

	second, err := s.svc.acquireLock()
	s.Require().NoError(err)
	s.svc.releaseLock(second)
}
