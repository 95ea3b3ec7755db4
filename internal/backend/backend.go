package backend

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"edider/internal/bounds"
	"edider/internal/domain"
	"edider/internal/gnome"
	"edider/internal/xrandr"
)

// New picks the provider for the configured backend, autodetecting from
// the session environment when the config says "auto".
func New(logger *zap.Logger, cfg domain.Config) (domain.Provider, error) {
	name := cfg.Backend()
	if name == "" || name == "auto" {
		name = Detect()
		logger.Info("Backend detected", zap.String("backend", name))
	}

	switch name {
	case "x11":
		return xrandr.NewProvider(logger, cfg), nil
	case "gnome":
		return gnome.NewProvider(logger)
	case "bounds":
		return bounds.NewProvider(logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// Detect applies the usual session heuristics: an X display wins, a GNOME
// Wayland session gets DisplayConfig, anything else falls back to bounds.
func Detect() string {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv("DISPLAY")
	desktop := strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP"))

	if sessionType == "x11" {
		return "x11"
	}
	if sessionType == "wayland" || waylandDisplay != "" {
		if strings.Contains(desktop, "gnome") || strings.Contains(desktop, "ubuntu") {
			return "gnome"
		}
		// XWayland still answers RandR queries when a DISPLAY is around
		if x11Display != "" {
			return "x11"
		}
		return "bounds"
	}
	if x11Display != "" {
		return "x11"
	}
	return "bounds"
}
