package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron"

	"risun-backend/models"
	"risun-backend/utils"
	"risun-backend/utils/logger"
)

// Service is the table provisioning worker. It runs on a cron schedule,
// takes a file lock so overlapping runs and parallel instances do not race,
// and ensures every required table exists.
type Service struct {
	config    *models.WorkerConfig
	appConfig *models.Config
	db        models.TableClient
	logger    logger.Logger

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// DefaultWorkerConfig derives provisioning settings from the application
// config.
func DefaultWorkerConfig(cfg *models.Config) *models.WorkerConfig {
	return &models.WorkerConfig{
		CronSchedule:   "@every 6h",
		LockTimeout:    10 * time.Minute,
		MaxRetries:     3,
		RetryDelay:     5 * time.Second,
		Environment:    cfg.AppEnv,
		RequiredTables: cfg.Tables,
		LockFilePath:   "/tmp/risun-provisioner.lock",
		StatusFilePath: "/tmp/risun-provisioner-status.json",
		RunOnce:        cfg.AppEnv == "development",
	}
}

// NewService creates a new provisioning worker
func NewService(workerCfg *models.WorkerConfig, appCfg *models.Config, db models.TableClient, log logger.Logger) *Service {
	return &Service{
		config:    workerCfg,
		appConfig: appCfg,
		db:        db,
		logger:    log,
	}
}

// StartInBackground runs one provisioning pass immediately and, unless
// RunOnce is set, schedules recurring passes.
func (s *Service) StartInBackground(ctx context.Context) error {
	s.logger.Infof("Starting table provisioner (env=%s, schedule=%s)", s.config.Environment, s.config.CronSchedule)

	if result := s.RunProvisioning(ctx); !result.Success {
		s.logger.Errorf("Initial provisioning failed: %s", result.ErrorMessage)
	}

	if s.config.RunOnce {
		s.logger.Info("Provisioner configured for a single run, not scheduling")
		return nil
	}

	s.cron = cron.New()
	err := s.cron.AddFunc(s.config.CronSchedule, func() {
		s.RunProvisioning(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule provisioner: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron schedule. Safe to call more than once.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.logger.Info("Table provisioner stopped")
}

// RunProvisioning executes one locked provisioning pass and records the
// outcome in the status file.
func (s *Service) RunProvisioning(ctx context.Context) *models.ExecutionResult {
	result := &models.ExecutionResult{
		Status:      models.StatusRunning,
		StartTime:   time.Now(),
		Environment: s.config.Environment,
		Metadata:    map[string]any{"required_tables": s.config.RequiredTables},
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		result.Status = models.StatusIdle
		result.ErrorMessage = "provisioning already in progress"
		return result
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	lock, err := s.acquireLock()
	if err != nil {
		result.Status = models.StatusFailed
		result.ErrorMessage = fmt.Sprintf("failed to acquire lock: %v", err)
		s.finish(result)
		return result
	}
	defer s.releaseLock(lock)

	created, err := s.ensureTables(ctx, result)
	result.TablesCreated = created
	if err != nil {
		result.Success = false
		result.Status = models.StatusFailed
		result.ErrorMessage = err.Error()
	} else {
		result.Success = true
		result.Status = models.StatusCompleted
	}

	s.finish(result)
	return result
}

func (s *Service) finish(result *models.ExecutionResult) {
	now := time.Now()
	result.EndTime = &now
	result.Duration = now.Sub(result.StartTime)

	if err := s.saveStatus(result); err != nil {
		s.logger.Warnf("Failed to save provisioner status: %v", err)
	}

	if result.Success {
		s.logger.Infof("Provisioning completed in %s, created %d tables", result.Duration, len(result.TablesCreated))
	}
}

// acquireLock takes the file lock, stealing it when the holder's lease has
// expired.
func (s *Service) acquireLock() (*models.LockInfo, error) {
	hostname, _ := os.Hostname()
	lock := &models.LockInfo{
		ID:          utils.GenerateUUID(),
		Owner:       hostname,
		AcquiredAt:  time.Now(),
		ExpiresAt:   time.Now().Add(s.config.LockTimeout),
		Environment: s.config.Environment,
	}

	if data, err := os.ReadFile(s.config.LockFilePath); err == nil {
		var existing models.LockInfo
		if err := json.Unmarshal(data, &existing); err == nil {
			if time.Now().Before(existing.ExpiresAt) {
				return nil, fmt.Errorf("lock held by %s until %s", existing.Owner, existing.ExpiresAt.Format(time.RFC3339))
			}
			s.logger.Warnf("Stealing expired provisioner lock from %s", existing.Owner)
		}
	}

	data, err := json.Marshal(lock)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(s.config.LockFilePath, data, 0644); err != nil {
		return nil, err
	}

	return lock, nil
}

func (s *Service) releaseLock(lock *models.LockInfo) {
	data, err := os.ReadFile(s.config.LockFilePath)
	if err != nil {
		return
	}

	var current models.LockInfo
	if err := json.Unmarshal(data, &current); err != nil || current.ID != lock.ID {
		// Someone else stole the lock after our lease expired, leave it.
		return
	}

	if err := os.Remove(s.config.LockFilePath); err != nil {
		s.logger.Warnf("Failed to release provisioner lock: %v", err)
	}
}
