package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and encoding of the process logger.
type Config struct {
	Level       string
	Format      string // "console" or "json"
	Development bool
}

// New builds a zap logger. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "json") {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	// One log line per tick event is normal at debug; never drop them.
	zapConfig.Sampling = nil

	return zapConfig.Build(zap.AddCaller())
}

func ParseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
