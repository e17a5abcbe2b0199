package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewNamed builds a zap logger for the given environment and names it after the service.
// Production gets JSON output at info level; everything else gets the colored console encoder.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
