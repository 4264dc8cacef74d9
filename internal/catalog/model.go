package catalog

import "github.com/shopspring/decimal"

// GroupKind classifies how a customer picks from an option group
type GroupKind string

const (
	// SingleChoice allows exactly one item ("tipo 2" groups)
	SingleChoice GroupKind = "SINGLE_CHOICE"
	// FreeQuantity allows any number of items, each with its own quantity
	FreeQuantity GroupKind = "FREE_QUANTITY"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Item is an immutable catalog entry: either a sellable menu item
// or a topping inside an option group.
// Code is the business key the sales backend knows the item by;
// it is NOT unique across groups.
type Item struct {
	ID        int             `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
}

// OptionGroup describes one customer-selectable topping/option group
// attached to a menu item.
type OptionGroup struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Kind     GroupKind `json:"kind"`
	Min      int       `json:"min"`
	Max      int       `json:"max"`
	Required bool      `json:"required"`
	Items    []Item    `json:"items"`
}

// IsFractionalQuota reports whether the group's selections share a fixed
// pool of Max slots (half-and-half pizza style) instead of being priced
// independently per item. Only min == max > 1 groups qualify.
func (g OptionGroup) IsFractionalQuota() bool {
	return g.Kind != SingleChoice && g.Min == g.Max && g.Max > 1
}
