package logger

import (
	"go.uber.org/zap"

	"github.com/recipewreck/backend/config"
)

// New builds the application logger. Production gets the JSON production
// config, everything else the human-readable development config.
func New() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
