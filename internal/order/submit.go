package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuildSubmission serializes the cart into backend order lines.
//
// Principals sharing a business key are numbered 1-based in cart order
// ("01-<code>", "02-<code>", ...); each principal's relational lines
// carry its occurrence key so the backend can reassociate them.
// Fractional lines for the same group and item are merged first,
// summing fraction and allocated price.
func BuildSubmission(items []ComposedItem) []SubmitLine {
	var lines []SubmitLine
	sequence := make(map[string]int)

	for _, item := range items {
		sequence[item.Code]++
		key := fmt.Sprintf("%02d-%s", sequence[item.Code], item.Code)

		marker := ""
		if len(item.Relational) > 0 {
			marker = MarkerPrincipal
		}

		qty := item.Qty
		if qty < 1 {
			qty = 1
		}

		lines = append(lines, SubmitLine{
			Code:          item.Code,
			Qty:           decimal.NewFromInt(int64(qty)),
			Note:          item.Note,
			Price:         item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
			OccurrenceKey: key,
			Marker:        marker,
		})

		for _, rel := range mergeFractional(item.Relational) {
			lines = append(lines, relationalSubmitLine(rel, key))
		}
	}

	return lines
}

// mergeFractional coalesces fractional lines that share a group and an
// item code; the UI does not always merge toppings added across several
// interaction passes. Non-fractional lines pass through untouched.
func mergeFractional(rels []RelationalLine) []RelationalLine {
	var out []RelationalLine
	index := make(map[string]int)

	for _, rel := range rels {
		if !rel.Fractional {
			out = append(out, rel)
			continue
		}
		k := fmt.Sprintf("%d|%s", rel.GroupID, rel.Code)
		if i, ok := index[k]; ok {
			out[i].Qty += rel.Qty
			out[i].FractionQty = out[i].FractionQty.Add(rel.FractionQty)
			out[i].Price = out[i].Price.Add(rel.Price)
			continue
		}
		index[k] = len(out)
		out = append(out, rel)
	}
	return out
}

func relationalSubmitLine(rel RelationalLine, key string) SubmitLine {
	line := SubmitLine{
		Code:          rel.Code,
		OccurrenceKey: key,
		Marker:        MarkerModifier,
	}

	if rel.Fractional {
		// allocated price, already split by the quota algorithm
		line.Qty = rel.FractionQty
		line.Price = rel.Price
		return line
	}

	qty := rel.Qty
	if qty < 1 {
		qty = 1
	}
	line.Qty = decimal.NewFromInt(int64(qty))
	line.Price = rel.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	return line
}
