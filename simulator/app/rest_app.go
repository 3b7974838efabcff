package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/Gthulhu/schedsim/simulator/migration"
	"github.com/Gthulhu/schedsim/simulator/rest"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}
	logger.InitLogger(config.GetConfig().Logging.Level)

	app := fx.New(
		handlerModule,
		fx.Invoke(migration.RunMongoMigration),
		fx.Invoke(StartRestApp),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on port %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on port %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			if cfg.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.ShutdownTimeout)*time.Second)
				defer cancel()
			}
			return engine.Shutdown(ctx)
		},
	})

	return nil
}
