package order

import (
	"github.com/google/uuid"

	"touchpos/internal/catalog"
	"touchpos/internal/pricing"
	"touchpos/internal/selection"
)

// Compose turns a validated selection into a cart entry: one principal
// line plus one relational line per selected topping, linked by the
// principal's freshly generated uuid. Prices come straight from the
// pricing engine so the cart can never disagree with the live preview.
func Compose(
	principal catalog.Item,
	qty int,
	groups []catalog.OptionGroup,
	sel *selection.Store,
	maxPriceMode bool,
) ComposedItem {

	if qty < 1 {
		qty = 1
	}

	quote := pricing.Price(principal, groups, sel, maxPriceMode)

	composed := ComposedItem{
		ID:        uuid.New().String(),
		Code:      principal.Code,
		Name:      principal.Name,
		Qty:       qty,
		UnitPrice: principal.UnitPrice,
		Total:     quote.Total,
		Marker:    MarkerPrincipal,
	}

	fractional := make(map[int]bool, len(groups))
	for _, g := range groups {
		fractional[g.ID] = g.IsFractionalQuota()
	}

	for _, gq := range quote.Groups {
		for _, line := range gq.Lines {
			composed.Relational = append(composed.Relational, RelationalLine{
				ID:            uuid.New().String(),
				PrincipalID:   composed.ID,
				GroupID:       gq.GroupID,
				Fractional:    fractional[gq.GroupID],
				Code:          line.Item.Code,
				Name:          line.Item.Name,
				Qty:           line.Qty,
				UnitPrice:     line.Item.UnitPrice,
				Price:         line.AllocatedPrice,
				FractionQty:   line.FractionQty,
				FractionLabel: line.FractionLabel,
				Marker:        MarkerModifier,
			})
		}
	}

	return composed
}
