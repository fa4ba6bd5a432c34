package app

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger: console encoding on stderr so
// command output on stdout stays clean. Level comes from
// MYAI_LOG_LEVEL (debug, info, warn, error), defaulting to warn.
func NewLogger(level string) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	lvl := zap.WarnLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)
	return zap.New(core)
}

// LoggerFromEnv builds the logger from MYAI_LOG_LEVEL.
func LoggerFromEnv() *zap.Logger {
	return NewLogger(os.Getenv("MYAI_LOG_LEVEL"))
}
