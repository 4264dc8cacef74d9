package order

import "context"

// Repository holds the cart's composed items per table until submission
type Repository interface {
	Add(ctx context.Context, table string, item ComposedItem) error
	List(ctx context.Context, table string) ([]ComposedItem, error)
	Clear(ctx context.Context, table string) error
}
