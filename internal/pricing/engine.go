package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"touchpos/internal/catalog"
	"touchpos/internal/selection"
)

// Fractions for the three-slot quota table. A three-slot quota is NOT
// split linearly: with two toppings the first one selected carries 0.67,
// and with three the most expensive carries the extra cent (0.34).
// Business rule inherited from the half-and-half pizza convention;
// do not "fix" the order/price asymmetry between the two rows.
var (
	fracMajor = decimal.NewFromFloat(0.67)
	fracMinor = decimal.NewFromFloat(0.33)
	fracTop   = decimal.NewFromFloat(0.34)
)

// PricedLine is one selected item with its share of the group price.
// FractionLabel/FractionQty are only set for fractional-quota groups.
type PricedLine struct {
	Item           catalog.Item    `json:"item"`
	Qty            int             `json:"qty"`
	AllocatedPrice decimal.Decimal `json:"allocated_price"`
	FractionLabel  string          `json:"fraction_label,omitempty"`
	FractionQty    decimal.Decimal `json:"fraction_qty,omitempty"`
}

type GroupQuote struct {
	GroupID  int             `json:"group_id"`
	Name     string          `json:"name"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Lines    []PricedLine    `json:"lines"`
}

type Quote struct {
	Total  decimal.Decimal `json:"total"`
	Groups []GroupQuote    `json:"groups"`
}

// Price computes the composed item's total: the principal's own unit
// price plus one contribution per option group. Pure and idempotent;
// recomputed on every interaction.
func Price(
	principal catalog.Item,
	groups []catalog.OptionGroup,
	sel *selection.Store,
	maxPriceMode bool,
) Quote {

	quote := Quote{Total: safePrice(principal.UnitPrice)}

	for _, g := range groups {
		gq := priceGroup(g, sel.Lines(g.ID), maxPriceMode)
		quote.Total = quote.Total.Add(gq.Subtotal)
		quote.Groups = append(quote.Groups, gq)
	}
	return quote
}

func priceGroup(g catalog.OptionGroup, lines []selection.Line, maxPriceMode bool) GroupQuote {
	gq := GroupQuote{GroupID: g.ID, Name: g.Name, Subtotal: decimal.Zero}

	if g.IsFractionalQuota() {
		gq.Lines = AllocateQuota(lines, g.Max, maxPriceMode)
		for _, l := range gq.Lines {
			gq.Subtotal = gq.Subtotal.Add(l.AllocatedPrice)
		}
		return gq
	}

	switch g.Kind {
	case catalog.SingleChoice:
		if len(lines) == 0 {
			return gq
		}
		item := lines[0].Item
		price := safePrice(item.UnitPrice)
		gq.Lines = []PricedLine{{Item: item, Qty: 1, AllocatedPrice: price}}
		gq.Subtotal = price

	case catalog.FreeQuantity:
		for _, l := range lines {
			if l.Qty < 1 {
				continue
			}
			price := safePrice(l.Item.UnitPrice).Mul(decimal.NewFromInt(int64(l.Qty)))
			gq.Lines = append(gq.Lines, PricedLine{
				Item:           l.Item,
				Qty:            l.Qty,
				AllocatedPrice: price,
			})
			gq.Subtotal = gq.Subtotal.Add(price)
		}

	default:
		// unrecognized kind contributes nothing; documented contract
	}

	return gq
}

// AllocateQuota splits a fractional-quota group's price among its
// slot-holders. The ONE implementation shared by live pricing and by
// payload composition, so the two can never drift.
//
// Proportional mode for a three-slot quota uses a fixed table keyed by
// how many distinct items are selected, not by the slot distribution:
//
//	3 items: first-found most expensive gets 0.34, the others 0.33
//	2 items: first selected gets 0.67, second 0.33 (order, not price)
//	1 item:  full price when it fills all 3 slots, else slots/3
//
// Every other quota size splits linearly by slots/max. In max-price
// mode only the first-found most expensive item is charged, at its
// full unit price.
func AllocateQuota(lines []selection.Line, max int, maxPriceMode bool) []PricedLine {
	selected := make([]selection.Line, 0, len(lines))
	for _, l := range lines {
		if l.Qty > 0 {
			selected = append(selected, l)
		}
	}
	if len(selected) == 0 || max < 1 {
		return nil
	}

	out := make([]PricedLine, len(selected))
	for i, l := range selected {
		out[i] = PricedLine{
			Item:          l.Item,
			Qty:           l.Qty,
			FractionLabel: fmt.Sprintf("%d/%d", l.Qty, max),
			FractionQty:   fractionQty(l.Qty, max),
		}
	}

	if maxPriceMode {
		top := mostExpensive(selected)
		for i := range out {
			if i == top {
				out[i].AllocatedPrice = safePrice(selected[i].Item.UnitPrice)
			} else {
				out[i].AllocatedPrice = decimal.Zero
			}
		}
		return out
	}

	if max == 3 {
		allocateThreeSlot(selected, out)
		return out
	}

	for i, l := range selected {
		out[i].AllocatedPrice = safePrice(l.Item.UnitPrice).Mul(fractionQty(l.Qty, max))
	}
	return out
}

func allocateThreeSlot(selected []selection.Line, out []PricedLine) {
	switch len(selected) {
	case 1:
		price := safePrice(selected[0].Item.UnitPrice)
		if selected[0].Qty == 3 {
			// the single topping fills the quota: full price branch,
			// not the linear formula
			out[0].AllocatedPrice = price
			return
		}
		out[0].AllocatedPrice = price.Mul(fractionQty(selected[0].Qty, 3))

	case 2:
		out[0].AllocatedPrice = safePrice(selected[0].Item.UnitPrice).Mul(fracMajor)
		out[1].AllocatedPrice = safePrice(selected[1].Item.UnitPrice).Mul(fracMinor)

	case 3:
		top := mostExpensive(selected)
		for i, l := range selected {
			frac := fracMinor
			if i == top {
				frac = fracTop
			}
			out[i].AllocatedPrice = safePrice(l.Item.UnitPrice).Mul(frac)
		}

	default:
		// a 3-slot quota cannot hold more than 3 distinct items, but a
		// malformed selection still prices linearly rather than failing
		for i, l := range selected {
			out[i].AllocatedPrice = safePrice(l.Item.UnitPrice).Mul(fractionQty(l.Qty, 3))
		}
	}
}

// mostExpensive returns the index of the first line holding the maximum
// unit price; ties go to encounter order.
func mostExpensive(lines []selection.Line) int {
	top := 0
	for i := 1; i < len(lines); i++ {
		if safePrice(lines[i].Item.UnitPrice).GreaterThan(safePrice(lines[top].Item.UnitPrice)) {
			top = i
		}
	}
	return top
}

func fractionQty(qty, max int) decimal.Decimal {
	return decimal.NewFromInt(int64(qty)).Div(decimal.NewFromInt(int64(max)))
}

// safePrice collapses negative or uninitialized prices to zero so a bad
// catalog row can never produce a negative total.
func safePrice(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
