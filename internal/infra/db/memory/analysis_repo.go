package memory

import (
	"context"
	"maps"
	"sync"

	domain "github.com/berkgungor/quantix/internal/domain/analysis"
)

// AnalysisRepository keeps analyses for the lifetime of the process.
// No eviction.
type AnalysisRepository struct {
	mu      sync.RWMutex
	records map[domain.ID]*domain.Record
}

func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{records: make(map[domain.ID]*domain.Record)}
}

// Create stores r under r.ID. Ids come from a UUID source so collisions are not checked.
func (r *AnalysisRepository) Create(ctx context.Context, rec *domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := *rec

	r.mu.Lock()
	r.records[rec.ID] = &cp
	r.mu.Unlock()
	return nil
}

// Get returns a copy of the stored record. The Results map is cloned at the
// top level only; nested values are shared.
func (r *AnalysisRepository) Get(ctx context.Context, id domain.ID) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	cp.Results = maps.Clone(rec.Results)
	return &cp, nil
}

func (r *AnalysisRepository) Update(ctx context.Context, id domain.ID, mutate func(*domain.Record)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	mutate(rec)
	rec.ID = id
	return nil
}

// Count returns the number of stored analyses.
func (r *AnalysisRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
