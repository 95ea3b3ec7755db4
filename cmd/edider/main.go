package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"edider/internal/backend"
	"edider/internal/config"
	"edider/internal/domain"
)

// AppOptions is the dependency graph of the CLI, kept as a variable so
// tests can check it with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		newConfig,
		newProvider,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		// Route fx's own events through zap
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Run blocks until the report goroutine asks for shutdown
	app.Run()
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newConfig(logger *zap.Logger) domain.Config {
	return config.New(logger)
}

func newProvider(logger *zap.Logger, cfg domain.Config) (domain.Provider, error) {
	return backend.New(logger, cfg)
}

// registerHooks prints one line per connected monitor on stdout, then asks
// fx to shut the app down.
func registerHooks(lc fx.Lifecycle, sd fx.Shutdowner, logger *zap.Logger, provider domain.Provider) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				code := 0
				monitors, err := provider.Monitors()
				if err != nil {
					logger.Error("Monitor enumeration failed",
						zap.String("backend", provider.Backend()),
						zap.Error(err))
					code = 1
				}
				for _, mon := range monitors {
					fmt.Println(mon)
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error("Shutdown failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})
}
