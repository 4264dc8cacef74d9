package catalog

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("catalog item not found")

// Repository defines all catalog reads the ordering core needs
type Repository interface {

	// Single sellable menu item by id
	GetItem(ctx context.Context, itemID int) (*Item, error)

	// All option groups attached to a menu item,
	// each with its selectable items and prices
	GroupsForItem(ctx context.Context, itemID int) ([]OptionGroup, error)
}
