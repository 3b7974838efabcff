package repository

import (
	"context"
	"testing"

	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNewRepositoryFallsBackToMemory(t *testing.T) {
	r, err := NewRepository(Params{MongoConfig: config.MongoDBConfig{Enable: false}})
	require.NoError(t, err)
	_, ok := r.(*memoryRepo)
	assert.True(t, ok)
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	older := &domain.Simulation{
		BaseEntity:  domain.BaseEntity{CreatedTime: 100},
		Fingerprint: "fp-1",
		Algorithm:   scheduler.FCFS,
		ClientID:    "alice",
	}
	newer := &domain.Simulation{
		BaseEntity:  domain.BaseEntity{CreatedTime: 200},
		Fingerprint: "fp-1",
		Algorithm:   scheduler.RR,
		Quantum:     2,
	}
	other := &domain.Simulation{
		BaseEntity:  domain.BaseEntity{CreatedTime: 150},
		Fingerprint: "fp-2",
		Algorithm:   scheduler.RR,
	}
	for _, sim := range []*domain.Simulation{older, newer, other} {
		require.NoError(t, r.InsertSimulation(ctx, sim))
		assert.False(t, sim.ID.IsZero())
	}

	all := &domain.QuerySimulationOptions{}
	require.NoError(t, r.QuerySimulations(ctx, all))
	require.Len(t, all.Result, 3)
	assert.Equal(t, newer.ID, all.Result[0].ID, "newest first")
	assert.Equal(t, other.ID, all.Result[1].ID)

	byFingerprint := &domain.QuerySimulationOptions{Fingerprints: []string{"fp-1"}, Algorithms: []scheduler.Algorithm{scheduler.RR}}
	require.NoError(t, r.QuerySimulations(ctx, byFingerprint))
	require.Len(t, byFingerprint.Result, 1)
	assert.Equal(t, newer.ID, byFingerprint.Result[0].ID)

	byClient := &domain.QuerySimulationOptions{ClientIDs: []string{"alice"}}
	require.NoError(t, r.QuerySimulations(ctx, byClient))
	require.Len(t, byClient.Result, 1)
	assert.Equal(t, older.ID, byClient.Result[0].ID)

	limited := &domain.QuerySimulationOptions{Limit: 2}
	require.NoError(t, r.QuerySimulations(ctx, limited))
	assert.Len(t, limited.Result, 2)

	require.NoError(t, r.DeleteSimulation(ctx, older.ID))
	assert.ErrorIs(t, r.DeleteSimulation(ctx, older.ID), domain.ErrNotFound)
	assert.ErrorIs(t, r.DeleteSimulation(ctx, bson.NewObjectID()), domain.ErrNotFound)

	byID := &domain.QuerySimulationOptions{IDs: []bson.ObjectID{older.ID}}
	require.NoError(t, r.QuerySimulations(ctx, byID))
	assert.Empty(t, byID.Result)

	assert.ErrorIs(t, r.QuerySimulations(ctx, nil), domain.ErrNilQueryInput)
	assert.Error(t, r.InsertSimulation(ctx, nil))
}
