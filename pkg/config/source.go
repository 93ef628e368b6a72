package config

import "sync"

// ColumnMapping names the source columns/fields that make up an event.
type ColumnMapping struct {
	ID        string `yaml:"id" validate:"required"`
	OrgID     string `yaml:"org_id" validate:"required"`
	OrgUnitID string `yaml:"org_unit_id"`
	EventType string `yaml:"event_type" validate:"required"`
	Payload   string `yaml:"payload" validate:"required"`
	Timestamp string `yaml:"timestamp"`
}

// Source configures one pollable event source for one org.
type Source struct {
	ID    string     `yaml:"id" validate:"required"`
	OrgID string     `yaml:"org_id" validate:"required"`
	Type  SourceType `yaml:"type"`

	// MYSQL: DSN and table. MONGO: URI, database, collection. HTTP: URL.
	ConnectionString string `yaml:"connection_string"`
	Table            string `yaml:"table"`
	Database         string `yaml:"database"`
	Collection       string `yaml:"collection"`
	URL              string `yaml:"url"`

	Columns ColumnMapping `yaml:"columns"`

	// SharedPool opts into the process-wide MySQL pool; dedicated otherwise.
	SharedPool bool `yaml:"shared_pool"`

	// PoolSize bounds the dedicated pool. Bounds: 1–20.
	PoolSize int `yaml:"pool_size"`
}

// SourceRegistry holds loaded event sources.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewSourceRegistry creates a registry from loaded definitions.
func NewSourceRegistry(defs []*Source) *SourceRegistry {
	m := make(map[string]*Source, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return &SourceRegistry{sources: m}
}

// Get retrieves a source by ID.
func (r *SourceRegistry) Get(id string) (*Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[id]
	if !ok {
		return nil, ErrSourceNotFound
	}
	return s, nil
}

// All returns every source in map order.
func (r *SourceRegistry) All() []*Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Source, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s)
	}
	return out
}

// Len returns the number of registered sources.
func (r *SourceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}
