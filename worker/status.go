package worker

import (
	"encoding/json"
	"os"

	"risun-backend/models"
)

// saveStatus writes the latest run result atomically: write a temp file,
// then rename over the status file.
func (s *Service) saveStatus(result *models.ExecutionResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.config.StatusFilePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.config.StatusFilePath)
}

// LoadStatus reads the last recorded run result, nil when no run has been
// recorded yet.
func (s *Service) LoadStatus() (*models.ExecutionResult, error) {
	data, err := os.ReadFile(s.config.StatusFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var result models.ExecutionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
