package configs

import (
	"errors"

	"go.uber.org/zap"

	"restaurant-backend/pkg/logger"
	"restaurant-backend/services"
)

// SeedManager creates the staff account on first run.
func SeedManager(cfg *Config, auth *services.AuthService) error {
	if cfg.ManagerUsername == "" || cfg.ManagerPassword == "" {
		logger.Log.Warn("skip seeding manager: missing MANAGER_USERNAME/MANAGER_PASSWORD")
		return nil
	}

	_, err := auth.RegisterManager(cfg.ManagerUsername, cfg.ManagerPassword)
	if errors.Is(err, services.ErrDuplicateUsername) {
		logger.Log.Info("manager already exists", zap.String("username", cfg.ManagerUsername))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Log.Info("manager seeded", zap.String("username", cfg.ManagerUsername))
	return nil
}

// SeedSettings forces the lazy settings record into existence so the data
// dir is complete after first boot.
func SeedSettings(settings *services.SettingsService) error {
	_, err := settings.Get()
	return err
}
