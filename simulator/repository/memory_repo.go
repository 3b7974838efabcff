package repository

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Gthulhu/schedsim/pkg/util"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memoryRepo keeps simulations in process memory. Used when MongoDB is disabled.
type memoryRepo struct {
	simulations *util.GenericMap[bson.ObjectID, domain.Simulation]
}

func NewMemoryRepository() domain.Repository {
	return &memoryRepo{
		simulations: util.NewGenericMap[bson.ObjectID, domain.Simulation](),
	}
}

func (r *memoryRepo) InsertSimulation(_ context.Context, sim *domain.Simulation) error {
	if sim == nil {
		return fmt.Errorf("nil simulation")
	}
	now := time.Now().UnixMilli()
	if sim.ID.IsZero() {
		sim.ID = bson.NewObjectID()
	}
	if sim.CreatedTime == 0 {
		sim.CreatedTime = now
	}
	sim.UpdatedTime = now
	r.simulations.Store(sim.ID, *sim)
	return nil
}

func (r *memoryRepo) QuerySimulations(_ context.Context, opt *domain.QuerySimulationOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	var result []*domain.Simulation
	r.simulations.Range(func(_ bson.ObjectID, sim domain.Simulation) bool {
		if matches(opt, &sim) {
			result = append(result, &sim)
		}
		return true
	})
	slices.SortFunc(result, func(a, b *domain.Simulation) int {
		if c := cmp.Compare(b.CreatedTime, a.CreatedTime); c != 0 {
			return c
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})
	if opt.Limit > 0 && int64(len(result)) > opt.Limit {
		result = result[:opt.Limit]
	}
	opt.Result = result
	return nil
}

func (r *memoryRepo) DeleteSimulation(_ context.Context, id bson.ObjectID) error {
	if _, ok := r.simulations.LoadAndDelete(id); !ok {
		return domain.ErrNotFound
	}
	return nil
}

func matches(opt *domain.QuerySimulationOptions, sim *domain.Simulation) bool {
	if len(opt.IDs) > 0 && !slices.Contains(opt.IDs, sim.ID) {
		return false
	}
	if len(opt.Algorithms) > 0 && !slices.Contains(opt.Algorithms, sim.Algorithm) {
		return false
	}
	if len(opt.Fingerprints) > 0 && !slices.Contains(opt.Fingerprints, sim.Fingerprint) {
		return false
	}
	if len(opt.ClientIDs) > 0 && !slices.Contains(opt.ClientIDs, sim.ClientID) {
		return false
	}
	return true
}
