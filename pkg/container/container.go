package container

import (
	"sync"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pkg/errors"
)

type ContainerType string

const (
	ContainerTypeMongoDB ContainerType = "mongodb"
)

type ContainerInfo struct {
	Name string
	Type ContainerType
}

// ContainerBuilder starts throwaway containers for integration tests and removes
// them again with PruneAll.
type ContainerBuilder struct {
	pool       *dockertest.Pool
	mu         sync.Mutex
	containers map[string]ContainerInfo
}

// NewContainerBuilder connects to the docker daemon at endpoint (empty means the
// environment default) and fails fast when it is unreachable.
func NewContainerBuilder(endpoint string) (*ContainerBuilder, error) {
	pool, err := dockertest.NewPool(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "connect docker")
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping docker")
	}
	pool.MaxWait = 2 * time.Minute
	return &ContainerBuilder{
		pool:       pool,
		containers: map[string]ContainerInfo{},
	}, nil
}

// FindContainer returns the container with the exact name, or nil.
func (b *ContainerBuilder) FindContainer(name string) (*docker.APIContainers, error) {
	list, err := b.pool.Client.ListContainers(docker.ListContainersOptions{
		All:     true,
		Filters: map[string][]string{"name": {name}},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list containers named %s", name)
	}
	for i := range list {
		for _, n := range list[i].Names {
			if n == "/"+name || n == name {
				return &list[i], nil
			}
		}
	}
	return nil, nil
}

func (b *ContainerBuilder) AddContainer(id string, info ContainerInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.containers[id] = info
}

func (b *ContainerBuilder) RunWithOptions(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	resource, err := b.pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "run %s:%s", opts.Repository, opts.Tag)
	}
	return resource, nil
}

// Retry calls op with exponential backoff until it succeeds or the pool's MaxWait elapses.
func (b *ContainerBuilder) Retry(op func() error) error {
	return b.pool.Retry(op)
}

// PruneAll force removes every container registered with AddContainer.
func (b *ContainerBuilder) PruneAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, info := range b.containers {
		err := b.pool.Client.RemoveContainer(docker.RemoveContainerOptions{
			ID:            id,
			Force:         true,
			RemoveVolumes: true,
		})
		var noSuch *docker.NoSuchContainer
		if err != nil && !errors.As(err, &noSuch) {
			return errors.Wrapf(err, "remove %s container %s", info.Type, info.Name)
		}
		delete(b.containers, id)
	}
	return nil
}
