package logger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ozstats/internal/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config logger.Config
	}{
		{"empty config uses defaults", logger.Config{}},
		{"console development", logger.Config{Level: "debug", Encoding: "console", Development: true}},
		{"json production", logger.Config{Level: "warn", Encoding: "json"}},
		{"unknown level falls back to info", logger.Config{Level: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, err := logger.New(&tt.config)
			require.NoError(t, err)
			require.NotNil(t, log)

			// Derived loggers must be usable without panicking.
			log.With("key", "value").Debug("debug message")
			log.WithComponent("test").Info("info message", "count", 3)
			log.WithError(errors.New("boom")).Warn("warn message")
			log.WithDuration(time.Second).Info("timed message")
		})
	}
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewNoOp()
	require.NotNil(t, log)

	log.Debug("ignored")
	log.Info("ignored", "odd-field")
	require.Same(t, log, log.With("a", 1))
	require.Same(t, log, log.WithComponent("x"))
}
