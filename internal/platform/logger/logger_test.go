package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug_level", logLevel: "debug"},
		{name: "info_level", logLevel: "info"},
		{name: "warn_level", logLevel: "warn"},
		{name: "error_level", logLevel: "error"},
		{name: "mixed_case", logLevel: "DeBuG"},
		{name: "invalid_falls_back_to_info", logLevel: "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err, "Setup should not fail for level %q", tc.logLevel)
			require.NotNil(t, logger, "Setup should return a non-nil logger")
			assert.Same(t, slog.Default(), logger, "Setup should install the logger as default")
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger the default is returned.
	assert.Same(t, slog.Default(), FromContext(ctx))

	// A stored logger is returned as-is.
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = WithLogger(ctx, custom)
	assert.Same(t, custom, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// No logger in context: the provided default wins.
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	// Logger in context: the context logger wins over the default.
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContextOrDefault(ctx, fallback))

	// Nil context and nil default: slog.Default().
	//nolint:staticcheck // exercising the nil-context path deliberately
	assert.Same(t, slog.Default(), FromContextOrDefault(nil, nil))
}
