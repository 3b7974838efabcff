package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/schedsim/simulator/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *repo) InsertSimulation(ctx context.Context, sim *domain.Simulation) error {
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

	res, err := r.db.Collection(simulationCollection).InsertOne(ctx, sim)
	if err != nil {
		return fmt.Errorf("insert simulation, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		sim.ID = oid
	}
	return nil
}

func (r *repo) QuerySimulations(ctx context.Context, opt *domain.QuerySimulationOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Algorithms) > 0 {
		filter["algorithm"] = bson.M{"$in": opt.Algorithms}
	}
	if len(opt.Fingerprints) > 0 {
		filter["fingerprint"] = bson.M{"$in": opt.Fingerprints}
	}
	if len(opt.ClientIDs) > 0 {
		filter["clientID"] = bson.M{"$in": opt.ClientIDs}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdTime", Value: -1}, {Key: "_id", Value: -1}})
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}
	cursor, err := r.db.Collection(simulationCollection).Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find simulations, err: %w", err)
	}

	var result []*domain.Simulation
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode simulations, err: %w", err)
	}
	opt.Result = result
	return nil
}

func (r *repo) DeleteSimulation(ctx context.Context, id bson.ObjectID) error {
	res, err := r.db.Collection(simulationCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete simulation, err: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
