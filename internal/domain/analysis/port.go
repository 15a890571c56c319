package analysis

import "context"

// Repository port (interface untuk penyimpanan analysis)
type Repository interface {
	Create(ctx context.Context, r *Record) error
	Get(ctx context.Context, id ID) (*Record, error)
	// Update applies mutate to the stored record while holding exclusive access.
	Update(ctx context.Context, id ID, mutate func(*Record)) error
}
