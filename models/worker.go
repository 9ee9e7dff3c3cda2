package models

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TableClient is the slice of the store client the provisioner needs.
// Declared here to avoid a dal import cycle.
type TableClient interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
	DeleteTable(ctx context.Context, input *dynamodb.DeleteTableInput) error
}

// WorkerConfig holds configuration for the table provisioning worker
type WorkerConfig struct {
	CronSchedule string `json:"cron_schedule"`

	LockTimeout time.Duration `json:"lock_timeout"`
	MaxRetries  int           `json:"max_retries"`
	RetryDelay  time.Duration `json:"retry_delay"`

	Environment    string   `json:"environment"`
	RequiredTables []string `json:"required_tables"`

	LockFilePath   string `json:"lock_file_path"`
	StatusFilePath string `json:"status_file_path"`

	RunOnce bool `json:"run_once"`
}

// LockInfo represents the file-based lock guarding provisioning
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// WorkerStatus represents the current status of the provisioning worker
type WorkerStatus string

const (
	StatusIdle      WorkerStatus = "idle"
	StatusRunning   WorkerStatus = "running"
	StatusCompleted WorkerStatus = "completed"
	StatusFailed    WorkerStatus = "failed"
	StatusRetrying  WorkerStatus = "retrying"
)

// ExecutionResult holds the result of a provisioning run
type ExecutionResult struct {
	Success       bool           `json:"success"`
	Status        WorkerStatus   `json:"status"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       *time.Time     `json:"end_time,omitempty"`
	Duration      time.Duration  `json:"duration"`
	TablesCreated []string       `json:"tables_created"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	RetryCount    int            `json:"retry_count"`
	Environment   string         `json:"environment"`
	Metadata      map[string]any `json:"metadata"`
}
