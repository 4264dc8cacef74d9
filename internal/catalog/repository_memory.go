package catalog

import "context"

// InMemoryRepository serves a fixed catalog; used by tests and demo mode
type InMemoryRepository struct {
	items  map[int]Item
	groups map[int][]OptionGroup
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:  make(map[int]Item),
		groups: make(map[int][]OptionGroup),
	}
}

func (r *InMemoryRepository) PutItem(item Item, groups ...OptionGroup) {
	r.items[item.ID] = item
	r.groups[item.ID] = groups
}

func (r *InMemoryRepository) GetItem(ctx context.Context, itemID int) (*Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) GroupsForItem(ctx context.Context, itemID int) ([]OptionGroup, error) {
	if _, ok := r.items[itemID]; !ok {
		return nil, ErrItemNotFound
	}
	return r.groups[itemID], nil
}
