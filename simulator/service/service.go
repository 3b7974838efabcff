package service

import (
	"crypto/rsa"
	"fmt"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Repo             domain.Repository
	SimulationConfig config.SimulationConfig
	CacheConfig      config.CacheConfig
	TokenConfig      config.TokenConfig
	Registerer       prometheus.Registerer `optional:"true"`
}

func NewService(params Params) (domain.Service, error) {
	return newService(params)
}

func newService(params Params) (*Service, error) {
	svc := &Service{
		Repo:            params.Repo,
		simConfig:       params.SimulationConfig,
		cacheConfig:     params.CacheConfig,
		tokenConfig:     params.TokenConfig,
		metricCollector: NewMetricCollector(),
	}
	if params.CacheConfig.Enable {
		svc.resultCache = cache.New[string, *domain.Simulation]()
	}
	if params.TokenConfig.Enable {
		key, err := params.TokenConfig.PrivateKey()
		if err != nil {
			return nil, fmt.Errorf("initialize JWT private key: %w", err)
		}
		svc.jwtPrivateKey = key
	}

	registerer := params.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	collector, err := registerCollector(registerer, svc.metricCollector)
	if err != nil {
		return nil, err
	}
	svc.metricCollector = collector
	return svc, nil
}

// registerCollector reuses an already registered collector so that several services
// built in one process share the same metrics.
func registerCollector(registerer prometheus.Registerer, collector *MetricCollector) (*MetricCollector, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*MetricCollector); ok {
			return existing, nil
		}
	}
	return nil, errors.Wrap(err, "register metric collector")
}

type Service struct {
	Repo            domain.Repository
	simConfig       config.SimulationConfig
	cacheConfig     config.CacheConfig
	tokenConfig     config.TokenConfig
	resultCache     *cache.Cache[string, *domain.Simulation]
	metricCollector *MetricCollector
	jwtPrivateKey   *rsa.PrivateKey
}
