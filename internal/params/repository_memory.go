package params

import "context"

type InMemoryRepository struct {
	values map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Set(code, value string) {
	r.values[code] = value
}

func (r *InMemoryRepository) Get(ctx context.Context, code string) (string, error) {
	value, ok := r.values[code]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}
