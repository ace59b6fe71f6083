package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	Level  string
	Format string
}

// New builds the process logger. Logs go to stderr so command output on
// stdout stays machine-readable.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	switch cfg.Format {
	case FormatJSON:
		zapConfig = zap.NewProductionConfig()
	case FormatConsole, "":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	levelText := cfg.Level
	if levelText == "" {
		levelText = "warn"
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
