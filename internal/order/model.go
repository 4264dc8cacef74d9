package order

import "github.com/shopspring/decimal"

// codm_status markers the sales backend expects on each line
const (
	// MarkerPrincipal flags a principal line that carries modifiers
	MarkerPrincipal = "R"
	// MarkerModifier flags a relational/topping line (backend default)
	MarkerModifier = "M"
)

// RelationalLine is one topping/option attached to a principal item,
// linked back to it by PrincipalID.
type RelationalLine struct {
	ID          string `json:"id"`
	PrincipalID string `json:"principal_id"`
	GroupID     int    `json:"group_id"`
	Fractional  bool   `json:"fractional"`

	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	// Price is the allocated price from the pricing engine, already
	// split for fractional-quota groups
	Price         decimal.Decimal `json:"price"`
	FractionQty   decimal.Decimal `json:"fraction_qty,omitempty"`
	FractionLabel string          `json:"fraction_label,omitempty"`
	Marker        string          `json:"codm_status"`
}

// ComposedItem is one confirmed cart entry: the principal menu item plus
// its relational lines. Once composed it is the unit of truth; the
// selection it came from is discarded.
type ComposedItem struct {
	ID         string           `json:"id"`
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Qty        int              `json:"qty"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	Total      decimal.Decimal  `json:"total"`
	Note       string           `json:"note,omitempty"`
	Marker     string           `json:"codm_status"`
	Relational []RelationalLine `json:"relational_items"`
}

// SubmitLine is the backend wire format for one order line.
// Qty carries either a whole quantity or a fraction of a quota.
type SubmitLine struct {
	Code          string          `json:"code"`
	Qty           decimal.Decimal `json:"qty"`
	Note          string          `json:"note"`
	Price         decimal.Decimal `json:"price"`
	OccurrenceKey string          `json:"group_occurrence_key,omitempty"`
	Marker        string          `json:"codm_status,omitempty"`
}

// Header carries the order-level fields the surrounding screens supply.
type Header struct {
	Table string `json:"table"`
	User  string `json:"user"`
	Notes string `json:"notes"`
}
