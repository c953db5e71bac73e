package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	Level    zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Encoding string        `yaml:"encoding" envconfig:"LOG_ENCODING"`
}

// NewLogger builds a named zap logger from config. Level defaults to info,
// encoding to console.
func NewLogger(cfg Log, name string) *zap.Logger {
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.Level)
	zapCfg.Encoding = encoding
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("logger build ", err)
	}

	return logger.Named(name)
}
