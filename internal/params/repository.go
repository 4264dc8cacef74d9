package params

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("parameter not found")

// Repository reads operating parameters keyed by their well-known code
type Repository interface {
	Get(ctx context.Context, code string) (string, error)
}
