package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Default *zap.SugaredLogger

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}

	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder // human-readable time

	rawLogger, err := cfg.Build()
	if err != nil {
		rawLogger = zap.NewNop()
	}
	Default = rawLogger.WithOptions(zap.AddCaller()).Sugar()
}

// SetLevel changes the level of Default at runtime. Accepts the zap level
// names ("debug", "info", "warn", "error"); an empty name is a no-op.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return fmt.Errorf("[logger] - invalid log level %q: %w", name, err)
	}
	level.SetLevel(l)
	return nil
}

// Level returns the current level of Default.
func Level() zapcore.Level {
	return level.Level()
}

// Replace swaps Default, returning a func that restores the previous logger.
// Tests use it to capture output with zaptest/observer.
func Replace(l *zap.SugaredLogger) func() {
	prev := Default
	Default = l
	return func() { Default = prev }
}
