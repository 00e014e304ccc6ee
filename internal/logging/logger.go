package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for env ("production" or anything else for
// development) at the named level, writing to stderr so stdout stays free
// for command output. An empty level keeps the environment's default.
func New(env, level string) (*zap.Logger, error) {
	return NewWithOutput(env, level, "stderr")
}

// NewWithOutput is New writing to output, a path or "stderr". Full-screen
// modes that own the terminal log to a file.
func NewWithOutput(env, level, output string) (*zap.Logger, error) {
	cfg, err := Config(env, level)
	if err != nil {
		return nil, err
	}

	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}
	return cfg.Build()
}

// Config returns the zap configuration New builds from.
func Config(env, level string) (zap.Config, error) {
	var cfg zap.Config

	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level.SetLevel(lvl)
	}

	return cfg, nil
}
