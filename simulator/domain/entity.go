package domain

import (
	"fmt"
	"time"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/Gthulhu/schedsim/pkg/util"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type BaseEntity struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	CreatedTime int64         `bson:"createdTime,omitempty"`
	UpdatedTime int64         `bson:"updatedTime,omitempty"`
}

func NewBaseEntity() BaseEntity {
	now := time.Now().UnixMilli()
	return BaseEntity{
		ID:          bson.NewObjectID(),
		CreatedTime: now,
		UpdatedTime: now,
	}
}

// Simulation is one stored run of the engine over a workload.
type Simulation struct {
	BaseEntity `bson:",inline"`

	Fingerprint string              `bson:"fingerprint"`
	ClientID    string              `bson:"clientID,omitempty"`
	Algorithm   scheduler.Algorithm `bson:"algorithm"`
	Quantum     int                 `bson:"quantum,omitempty"`
	Processes   []scheduler.Process `bson:"processes"`
	Results     []scheduler.Result  `bson:"results"`
	Slices      []scheduler.Slice   `bson:"slices"`
	Summary     scheduler.Summary   `bson:"summary"`
}

// Schedule rebuilds the engine output stored in the simulation.
func (s *Simulation) Schedule() *scheduler.Schedule {
	return &scheduler.Schedule{
		Algorithm: s.Algorithm,
		Quantum:   s.Quantum,
		Results:   s.Results,
		Slices:    s.Slices,
	}
}

type SimulationRequest struct {
	Algorithm scheduler.Algorithm
	Quantum   int
	Processes []scheduler.Process
	ClientID  string
}

type CompareRequest struct {
	Quantum   int
	Processes []scheduler.Process
	ClientID  string
}

// Fingerprint identifies a workload independently of the algorithm run on it.
// Input order matters because it breaks scheduling ties.
func Fingerprint(processes []scheduler.Process) string {
	return util.MerkleRoot(processes, func(p scheduler.Process) string {
		return fmt.Sprintf("%s|%d|%d|%d", p.ID, p.Arrival, p.Burst, p.Priority)
	})
}

// Claims represents JWT token claims
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
