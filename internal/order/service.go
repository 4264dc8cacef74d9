package order

import (
	"context"
	"errors"

	"touchpos/internal/catalog"
	"touchpos/internal/pricing"
	"touchpos/internal/selection"
)

var (
	ErrIncompleteSelection = errors.New("selection does not satisfy group rules")
	ErrEmptyCart           = errors.New("cart is empty")
)

// Flags supplies the pricing policy switches; satisfied by *params.Service
type Flags interface {
	MaxPriceTopping(ctx context.Context) bool
}

type Service struct {
	catalog catalog.Repository
	flags   Flags
	cart    Repository
	backend Submitter
}

func NewService(
	catalogRepo catalog.Repository,
	flags Flags,
	cart Repository,
	backend Submitter,
) *Service {
	return &Service{
		catalog: catalogRepo,
		flags:   flags,
		cart:    cart,
		backend: backend,
	}
}

// Pick is one selection event replayed from the configuration screen.
type Pick struct {
	GroupID int `json:"group_id"`
	ItemID  int `json:"item_id"`
	Qty     int `json:"qty"`
}

// --------------------------------------------------
// Replay screen picks into a selection store
// --------------------------------------------------
// Picks go through the store's own mutation rules, so quota caps and
// single-choice replacement hold server-side no matter what the client
// sent. Unknown groups/items are skipped.
func ApplyPicks(groups []catalog.OptionGroup, picks []Pick) *selection.Store {
	byID := make(map[int]catalog.OptionGroup, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	store := selection.NewStore()
	for _, p := range picks {
		g, ok := byID[p.GroupID]
		if !ok {
			continue
		}
		item, ok := groupItem(g, p.ItemID)
		if !ok {
			continue
		}
		if g.Kind == catalog.SingleChoice {
			store.SelectSingle(g, item)
			continue
		}
		for i := 0; i < p.Qty; i++ {
			if !store.AdjustQuantity(g, item, 1) {
				break
			}
		}
	}
	return store
}

func groupItem(g catalog.OptionGroup, itemID int) (catalog.Item, bool) {
	for _, item := range g.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return catalog.Item{}, false
}

// --------------------------------------------------
// Live price preview for the configuration screen
// --------------------------------------------------
func (s *Service) Quote(
	ctx context.Context,
	itemID int,
	picks []Pick,
) (pricing.Quote, selection.Result, error) {

	item, groups, err := s.load(ctx, itemID)
	if err != nil {
		return pricing.Quote{}, selection.Result{}, err
	}

	store := ApplyPicks(groups, picks)
	result := selection.Validate(groups, store)
	quote := pricing.Price(*item, groups, store, s.flags.MaxPriceTopping(ctx))

	return quote, result, nil
}

// --------------------------------------------------
// Confirm one configured item into the table's cart
// --------------------------------------------------
func (s *Service) AddToCart(
	ctx context.Context,
	table string,
	itemID int,
	qty int,
	picks []Pick,
) (ComposedItem, error) {

	item, groups, err := s.load(ctx, itemID)
	if err != nil {
		return ComposedItem{}, err
	}

	store := ApplyPicks(groups, picks)
	if result := selection.Validate(groups, store); !result.Valid {
		return ComposedItem{}, ErrIncompleteSelection
	}

	composed := Compose(*item, qty, groups, store, s.flags.MaxPriceTopping(ctx))
	if err := s.cart.Add(ctx, table, composed); err != nil {
		return ComposedItem{}, err
	}
	return composed, nil
}

func (s *Service) Cart(ctx context.Context, table string) ([]ComposedItem, error) {
	return s.cart.List(ctx, table)
}

// --------------------------------------------------
// Serialize and send the table's order
// --------------------------------------------------
func (s *Service) Submit(ctx context.Context, header Header) ([]SubmitLine, error) {
	items, err := s.cart.List(ctx, header.Table)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := BuildSubmission(items)

	err = s.backend.Submit(ctx, SubmitRequest{
		Table: header.Table,
		User:  header.User,
		Notes: header.Notes,
		Lines: lines,
	})
	if err != nil {
		return nil, err
	}

	// cleared only after the backend accepted the order
	if err := s.cart.Clear(ctx, header.Table); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) load(ctx context.Context, itemID int) (*catalog.Item, []catalog.OptionGroup, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.catalog.GroupsForItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	return item, groups, nil
}
