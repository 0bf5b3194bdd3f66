package utils

import (
	"os"

	"go.uber.org/zap"
)

func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "prod" {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
	return zap.NewDevelopment()
}
