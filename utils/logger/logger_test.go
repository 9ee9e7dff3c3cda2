package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug json", "debug", "json"},
		{"info text", "info", "text"},
		{"warn json", "warn", "json"},
		{"error text", "error", "text"},
		{"unknown level falls back", "nope", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLogger(tt.level, tt.format)
			assert.NotNil(t, log)

			log.Debugf("debug %s", "message")
			log.Infof("info %s", "message")
			log.Warnf("warn %s", "message")
			log.Errorf("error %s", "message")
		})
	}
}
