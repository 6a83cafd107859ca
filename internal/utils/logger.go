package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger. In the "dev" environment it
// uses the human-readable console encoder with debug level; otherwise a
// production JSON logger at info level. The logger is also installed as
// the zap global so packages without an injected logger can fall back
// to zap.L().
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// MustLogger is NewLogger but panics on failure; logging is not
// optional at startup.
func MustLogger(env string) *zap.Logger {
	logger, err := NewLogger(env)
	if err != nil {
		panic(err)
	}
	return logger
}
