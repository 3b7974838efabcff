package app

import (
	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/simulator/repository"
	"github.com/Gthulhu/schedsim/simulator/rest"
	"github.com/Gthulhu/schedsim/simulator/service"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitSimConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.SimConfig {
			return cfg
		}),
		fx.Provide(func(simCfg config.SimConfig) config.ServerConfig {
			return simCfg.Server
		}),
		fx.Provide(func(simCfg config.SimConfig) config.SimulationConfig {
			return simCfg.Simulation
		}),
		fx.Provide(func(simCfg config.SimConfig) config.CacheConfig {
			return simCfg.Cache
		}),
		fx.Provide(func(simCfg config.SimConfig) config.MongoDBConfig {
			return simCfg.MongoDB
		}),
		fx.Provide(func(simCfg config.SimConfig) config.TokenConfig {
			return simCfg.Token
		}),
	), nil
}

// RepoModule creates an Fx module that provides the repository layer, return domain.Repository
func RepoModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(repository.NewRepository),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	repoModule, err := RepoModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
