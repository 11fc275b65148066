package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	base := logrus.New()
	base.SetLevel(logrus.WarnLevel)

	logger := NewLogrusAdapterFromLogger(base)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, adapter.logger.Level)

	// nil input falls back to a fresh logger rather than panicking
	require.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestMockLoggerCapturesFields(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("transaction categorized", Field{Key: FieldCategory, Value: "Food"})

	require.Len(t, mock.Entries, 1)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "transaction categorized", mock.Entries[0].Message)
	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, FieldCategory, mock.Entries[0].Fields[0].Key)

	scoped, ok := mock.WithError(errors.New("boom")).(*MockLogger)
	require.True(t, ok)
	scoped.Error("snapshot fetch failed")
	assert.True(t, scoped.HasEntry("ERROR", "snapshot fetch failed"))
	assert.EqualError(t, scoped.Entries[len(scoped.Entries)-1].Error, "boom")
}
