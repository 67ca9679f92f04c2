// Package ecs is a minimal entity-component-system storage engine: typed
// component data attached to opaque entity ids, with per-type update logic
// run once per Step in a deterministic priority order. All of it is
// single-threaded; a Manager must only ever be touched from one goroutine.
package ecs

import "go.uber.org/zap"

// Manager owns the entities and the per-type component stores. One Manager
// is one isolated world: entity ids and component-type ids are scoped to it.
type Manager struct {
	log      *zap.Logger
	entities directory
	registry typeRegistry
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger attaches a logger for lifecycle debug output. Without it the
// Manager is silent.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager returns an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		log:      zap.NewNop(),
		entities: newDirectory(),
		registry: newTypeRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateEntity allocates a fresh entity with no components attached.
func (m *Manager) CreateEntity() *Entity {
	e := m.entities.create(m)
	m.log.Debug("entity created", zap.Uint64("id", uint64(e.id)))
	return e
}

// CreateEntities allocates n entities at once.
func (m *Manager) CreateEntities(n int) []*Entity {
	out := make([]*Entity, n)
	for i := range out {
		out[i] = m.CreateEntity()
	}
	return out
}

// GetByID resolves an id to its live entity, or nil. Destroyed and
// never-assigned ids look the same: absent. Update hooks may destroy
// entities at any point, so ids held across a Step must be re-resolved.
func (m *Manager) GetByID(id EntityID) *Entity {
	return m.entities.get(id)
}

// Step runs one update pass over every registered store in priority order.
// Call once per host tick.
func (m *Manager) Step() {
	m.registry.manageAll()
}
