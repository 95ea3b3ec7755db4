package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultBackend = "auto"
	defaultScreen  = 0
)

// AppConfig holds application configuration
type AppConfig struct {
	logger  *zap.Logger
	backend string
	screen  int
}

// New reads configuration from environment variables, falling back to
// defaults. EDIDER_BACKEND picks the display backend (auto, x11, gnome,
// bounds); EDIDER_SCREEN picks the display-server screen index.
func New(logger *zap.Logger) *AppConfig {
	backend := os.Getenv("EDIDER_BACKEND")
	if backend == "" {
		backend = defaultBackend
	}

	screen := defaultScreen
	if v := os.Getenv("EDIDER_SCREEN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			logger.Warn("Invalid EDIDER_SCREEN, using default",
				zap.String("value", v),
				zap.Int("default", defaultScreen))
		} else {
			screen = n
		}
	}

	logger.Info("Configuration loaded",
		zap.String("backend", backend),
		zap.Int("screen", screen))

	return &AppConfig{
		logger:  logger,
		backend: backend,
		screen:  screen,
	}
}

// Backend returns the configured backend name, "auto" to detect
func (c *AppConfig) Backend() string {
	return c.backend
}

// Screen returns the display-server screen index to inspect
func (c *AppConfig) Screen() int {
	return c.screen
}
