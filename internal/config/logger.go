package config

import "go.uber.org/zap"

// NewLogger returns a production zap logger for APP_ENV=production and a development one otherwise
func NewLogger(cfg EnvConfig) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
