package repository

import (
	"context"
	"time"

	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	simulationCollection = "simulations"
	connectTimeout       = 10 * time.Second
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository returns the Mongo backed repository, or an in-memory one when
// mongodb.enable is false.
func NewRepository(params Params) (domain.Repository, error) {
	if !params.MongoConfig.Enable {
		return NewMemoryRepository(), nil
	}
	client, err := mongo.Connect(options.Client().ApplyURI(params.MongoConfig.URI()))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongodb")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrapf(err, "ping mongodb %s:%s", params.MongoConfig.Host, params.MongoConfig.Port)
	}
	return &repo{
		client: client,
		db:     client.Database(params.MongoConfig.Database),
	}, nil
}
