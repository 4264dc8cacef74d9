package order

import (
	"context"
	"sync"
)

// InMemoryRepository keeps carts in process memory; submitted orders are
// the backend's problem, so nothing here survives a restart.
type InMemoryRepository struct {
	mu    sync.Mutex
	carts map[string][]ComposedItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts: make(map[string][]ComposedItem),
	}
}

func (r *InMemoryRepository) Add(ctx context.Context, table string, item ComposedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[table] = append(r.carts[table], item)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, table string) ([]ComposedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[table]
	out := make([]ComposedItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) Clear(ctx context.Context, table string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, table)
	return nil
}
