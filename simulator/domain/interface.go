package domain

import (
	"context"
	"io"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type QuerySimulationOptions struct {
	IDs          []bson.ObjectID
	Algorithms   []scheduler.Algorithm
	Fingerprints []string
	ClientIDs    []string
	// Limit caps the result size, newest first. Zero means no limit.
	Limit  int64
	Result []*Simulation
}

type Repository interface {
	InsertSimulation(ctx context.Context, sim *Simulation) error
	QuerySimulations(ctx context.Context, opt *QuerySimulationOptions) error
	DeleteSimulation(ctx context.Context, id bson.ObjectID) error
}

type Service interface {
	RunSimulation(ctx context.Context, req *SimulationRequest) (*Simulation, error)
	CompareAlgorithms(ctx context.Context, req *CompareRequest) ([]*Simulation, error)
	// GetSimulation, DeleteSimulation and RenderReport only see simulations owned by
	// clientID. An empty clientID (token auth disabled) sees every simulation.
	GetSimulation(ctx context.Context, clientID string, id string) (*Simulation, error)
	ListSimulations(ctx context.Context, opt *QuerySimulationOptions) error
	DeleteSimulation(ctx context.Context, clientID string, id string) error
	RenderReport(ctx context.Context, clientID string, id string, w io.Writer) error

	VerifyAndGenerateToken(ctx context.Context, clientID string, publicKey string) (string, int64, error)
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}
