package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/Gthulhu/schedsim/pkg/report"
	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"
)

// RunSimulation computes one schedule, stores it and caches it by workload fingerprint.
// A repeated request from the same client for the same workload, algorithm and quantum
// returns the cached run.
func (svc *Service) RunSimulation(ctx context.Context, req *domain.SimulationRequest) (*domain.Simulation, error) {
	if req == nil {
		return nil, errors.New("nil simulation request")
	}
	quantum := svc.effectiveQuantum(req.Algorithm, req.Quantum)
	if err := svc.checkLimits(req.Processes); err != nil {
		return nil, err
	}

	fingerprint := domain.Fingerprint(req.Processes)
	key := cacheKey(req.ClientID, fingerprint, req.Algorithm, quantum)
	if cached, ok := svc.lookupCache(key); ok {
		logger.Logger(ctx).Debug().Str("fingerprint", fingerprint).Str("algorithm", string(req.Algorithm)).Msg("simulation served from cache")
		return cached, nil
	}

	schedule, err := scheduler.Simulate(req.Processes, req.Algorithm, quantum)
	if err != nil {
		return nil, err
	}
	summary, err := scheduler.Summarize(schedule.Results)
	if err != nil {
		return nil, err
	}

	sim := &domain.Simulation{
		BaseEntity:  domain.NewBaseEntity(),
		Fingerprint: fingerprint,
		ClientID:    req.ClientID,
		Algorithm:   schedule.Algorithm,
		Quantum:     schedule.Quantum,
		Processes:   slices.Clone(req.Processes),
		Results:     schedule.Results,
		Slices:      schedule.Slices,
		Summary:     summary,
	}
	if err := svc.Repo.InsertSimulation(ctx, sim); err != nil {
		return nil, errors.WithMessage(err, "store simulation")
	}
	svc.storeCache(key, sim)
	svc.metricCollector.ObserveRun(sim.Algorithm, len(sim.Processes), summary)

	logger.Logger(ctx).Info().
		Str("id", sim.ID.Hex()).
		Str("algorithm", string(sim.Algorithm)).
		Int("processes", len(sim.Processes)).
		Float64("avg_waiting", summary.AverageWaiting).
		Msg("simulation completed")
	return sim, nil
}

// CompareAlgorithms runs every algorithm over the same workload concurrently and
// orders the outcomes by average waiting time, best first.
func (svc *Service) CompareAlgorithms(ctx context.Context, req *domain.CompareRequest) ([]*domain.Simulation, error) {
	if req == nil {
		return nil, errors.New("nil compare request")
	}
	sims := make([]*domain.Simulation, len(scheduler.Algorithms))
	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range scheduler.Algorithms {
		g.Go(func() error {
			sim, err := svc.RunSimulation(gctx, &domain.SimulationRequest{
				Algorithm: alg,
				Quantum:   req.Quantum,
				Processes: slices.Clone(req.Processes),
				ClientID:  req.ClientID,
			})
			if err != nil {
				return errors.WithMessagef(err, "run %s", alg)
			}
			sims[i] = sim
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].Summary.AverageWaiting < sims[j].Summary.AverageWaiting
	})
	svc.metricCollector.ObserveComparison()
	return sims, nil
}

func (svc *Service) GetSimulation(ctx context.Context, clientID string, id string) (*domain.Simulation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	opt := &domain.QuerySimulationOptions{IDs: []bson.ObjectID{oid}}
	if clientID != "" {
		opt.ClientIDs = []string{clientID}
	}
	if err := svc.Repo.QuerySimulations(ctx, opt); err != nil {
		return nil, err
	}
	if len(opt.Result) == 0 {
		return nil, errors.Wrapf(domain.ErrNotFound, "simulation %s", id)
	}
	return opt.Result[0], nil
}

func (svc *Service) ListSimulations(ctx context.Context, opt *domain.QuerySimulationOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QuerySimulations(ctx, opt)
}

func (svc *Service) DeleteSimulation(ctx context.Context, clientID string, id string) error {
	sim, err := svc.GetSimulation(ctx, clientID, id)
	if err != nil {
		return err
	}
	if err := svc.Repo.DeleteSimulation(ctx, sim.ID); err != nil {
		return err
	}
	if svc.resultCache != nil {
		key := cacheKey(sim.ClientID, sim.Fingerprint, sim.Algorithm, sim.Quantum)
		if cached, ok := svc.resultCache.Get(key); ok && cached.ID == sim.ID {
			svc.resultCache.Delete(key)
		}
	}
	logger.Logger(ctx).Info().Str("id", id).Msg("simulation deleted")
	return nil
}

// RenderReport writes the text report of a stored simulation.
func (svc *Service) RenderReport(ctx context.Context, clientID string, id string, w io.Writer) error {
	sim, err := svc.GetSimulation(ctx, clientID, id)
	if err != nil {
		return err
	}
	report.Write(w, "", sim.Schedule(), sim.Summary)
	return nil
}

func (svc *Service) effectiveQuantum(alg scheduler.Algorithm, quantum int) int {
	if alg != scheduler.RR {
		return 0
	}
	if quantum == 0 {
		return svc.simConfig.DefaultQuantum
	}
	return quantum
}

func (svc *Service) checkLimits(processes []scheduler.Process) error {
	if limit := svc.simConfig.MaxProcesses; limit > 0 && len(processes) > limit {
		return errors.Wrapf(domain.ErrTooManyProcesses, "%d > %d", len(processes), limit)
	}
	if limit := svc.simConfig.MaxTotalBurst; limit > 0 {
		total := 0
		for _, p := range processes {
			if p.Burst > 0 {
				total += p.Burst
			}
		}
		if total > limit {
			return errors.Wrapf(domain.ErrWorkloadTooLong, "%d > %d", total, limit)
		}
	}
	return nil
}

func (svc *Service) lookupCache(key string) (*domain.Simulation, bool) {
	if svc.resultCache == nil {
		return nil, false
	}
	sim, ok := svc.resultCache.Get(key)
	svc.metricCollector.ObserveCache(ok)
	return sim, ok
}

func (svc *Service) storeCache(key string, sim *domain.Simulation) {
	if svc.resultCache == nil {
		return
	}
	if ttl := svc.cacheConfig.TTL(); ttl > 0 {
		svc.resultCache.Set(key, sim, cache.WithExpiration(ttl))
		return
	}
	svc.resultCache.Set(key, sim)
}

// cacheKey scopes cached runs to the requesting client.
func cacheKey(clientID string, fingerprint string, alg scheduler.Algorithm, quantum int) string {
	return fmt.Sprintf("%s/%s/%s/%d", clientID, fingerprint, alg, quantum)
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, errors.Wrapf(domain.ErrInvalidID, "%q", id)
	}
	return oid, nil
}
