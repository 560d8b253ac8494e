package logger_test

import (
	"context"
	"testing"

	"vocab/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment},
		{name: "explicit level wins", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "bad level", environment: logger.ProductionEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger := zap.NewExample()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))
	logger.Info(ctx, "hello", zap.Int("n", 42))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	require.EqualValues(t, 42, entries[0].ContextMap()["n"])
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestGooseAndStdLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Goose(ctx).Printf("OK   %s (%dms)", "00001_users.sql", 3)
	logger.StdLog(ctx).Print("http: TLS handshake error")

	require.Equal(t, 1, logs.FilterMessage("OK   00001_users.sql (3ms)").Len())
	require.Equal(t, "goose", logs.FilterMessage("OK   00001_users.sql (3ms)").All()[0].LoggerName)
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
