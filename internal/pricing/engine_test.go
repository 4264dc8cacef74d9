package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"touchpos/internal/catalog"
	"touchpos/internal/selection"
)

func topping(id int, code string, price float64) catalog.Item {
	return catalog.Item{
		ID:        id,
		Code:      code,
		Name:      code,
		UnitPrice: decimal.NewFromFloat(price),
		Status:    catalog.StatusActive,
	}
}

func quotaGroup(id, slots int) catalog.OptionGroup {
	return catalog.OptionGroup{
		ID:   id,
		Name: "flavors",
		Kind: catalog.FreeQuantity,
		Min:  slots,
		Max:  slots,
	}
}

func pick(store *selection.Store, g catalog.OptionGroup, item catalog.Item, qty int) {
	for i := 0; i < qty; i++ {
		store.AdjustQuantity(g, item, 1)
	}
}

func assertPrice(t *testing.T, got, want decimal.Decimal, label string) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s: got %s, want %s", label, got, want)
	}
}

// --------------------------------------------------
// Linear split (any quota size but 3)
// --------------------------------------------------
func TestFourSlotQuotaSplitsLinearly(t *testing.T) {
	g := quotaGroup(1, 4)
	store := selection.NewStore()

	a := topping(10, "CAL", 10)
	b := topping(11, "MUS", 8)
	pick(store, g, a, 3)
	pick(store, g, b, 1)

	lines := AllocateQuota(store.Lines(g.ID), 4, false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 priced lines, got %d", len(lines))
	}

	// slots/max rule, independent of price ordering
	assertPrice(t, lines[0].AllocatedPrice, decimal.NewFromFloat(7.5), "3/4 of 10")
	assertPrice(t, lines[1].AllocatedPrice, decimal.NewFromFloat(2), "1/4 of 8")

	if lines[0].FractionLabel != "3/4" || lines[1].FractionLabel != "1/4" {
		t.Fatalf("wrong fraction labels: %q %q", lines[0].FractionLabel, lines[1].FractionLabel)
	}

	principal := topping(1, "PIZZA", 0)
	quote := Price(principal, []catalog.OptionGroup{g}, store, false)
	assertPrice(t, quote.Total, decimal.NewFromFloat(9.5), "group contribution")
}

// --------------------------------------------------
// Three-slot table
// --------------------------------------------------
func TestThreeSlotThreeItemsTieBreak(t *testing.T) {
	g := quotaGroup(1, 3)
	store := selection.NewStore()

	// two items share the maximum price; the first one found wins 0.34
	a := topping(10, "CAL", 12)
	b := topping(11, "POR", 12)
	c := topping(12, "MUS", 9)
	pick(store, g, a, 1)
	pick(store, g, b, 1)
	pick(store, g, c, 1)

	lines := AllocateQuota(store.Lines(g.ID), 3, false)

	assertPrice(t, lines[0].AllocatedPrice, decimal.NewFromFloat(4.08), "first 12 × 0.34")
	assertPrice(t, lines[1].AllocatedPrice, decimal.NewFromFloat(3.96), "second 12 × 0.33")
	assertPrice(t, lines[2].AllocatedPrice, decimal.NewFromFloat(2.97), "9 × 0.33")
}

func TestThreeSlotTwoItemsSplitByOrderNotPrice(t *testing.T) {
	g := quotaGroup(1, 3)
	store := selection.NewStore()

	// the cheaper item was selected first, and still gets 0.67
	cheap := topping(10, "MUS", 5)
	dear := topping(11, "CAL", 20)
	pick(store, g, cheap, 2)
	pick(store, g, dear, 1)

	lines := AllocateQuota(store.Lines(g.ID), 3, false)

	assertPrice(t, lines[0].AllocatedPrice, decimal.NewFromFloat(3.35), "5 × 0.67")
	assertPrice(t, lines[1].AllocatedPrice, decimal.NewFromFloat(6.6), "20 × 0.33")
}

func TestThreeSlotSingleItemFullQuotaIsFullPrice(t *testing.T) {
	g := quotaGroup(1, 3)
	store := selection.NewStore()

	a := topping(10, "CAL", 11.9)
	pick(store, g, a, 3)

	lines := AllocateQuota(store.Lines(g.ID), 3, false)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	// full-price branch, not slots/max arithmetic
	assertPrice(t, lines[0].AllocatedPrice, a.UnitPrice, "full quota")
	if lines[0].FractionLabel != "3/3" {
		t.Fatalf("wrong label: %q", lines[0].FractionLabel)
	}
}

func TestThreeSlotSingleItemPartialQuota(t *testing.T) {
	g := quotaGroup(1, 3)
	store := selection.NewStore()

	a := topping(10, "CAL", 9)
	pick(store, g, a, 2)

	lines := AllocateQuota(store.Lines(g.ID), 3, false)

	want := a.UnitPrice.Mul(decimal.NewFromInt(2).Div(decimal.NewFromInt(3)))
	assertPrice(t, lines[0].AllocatedPrice, want, "2/3 of 9")
	if lines[0].AllocatedPrice.Equal(a.UnitPrice) {
		t.Fatalf("partial quota charged full price")
	}
}

// --------------------------------------------------
// Max-price mode
// --------------------------------------------------
func TestMaxPriceModeChargesOnlyTheMostExpensive(t *testing.T) {
	g := quotaGroup(1, 3)
	store := selection.NewStore()

	a := topping(10, "MUS", 9)
	b := topping(11, "CAL", 12)
	pick(store, g, a, 2)
	pick(store, g, b, 1)

	lines := AllocateQuota(store.Lines(g.ID), 3, true)

	// slot distribution is irrelevant: the dearest topping is charged full
	assertPrice(t, lines[0].AllocatedPrice, decimal.Zero, "cheaper topping")
	assertPrice(t, lines[1].AllocatedPrice, b.UnitPrice, "dearest topping")

	// labels still reflect the slot distribution
	if lines[0].FractionLabel != "2/3" || lines[1].FractionLabel != "1/3" {
		t.Fatalf("labels changed by pricing mode: %q %q", lines[0].FractionLabel, lines[1].FractionLabel)
	}
}

// --------------------------------------------------
// Totality and defensive defaults
// --------------------------------------------------
func TestPriceIsIdempotent(t *testing.T) {
	g := quotaGroup(1, 3)
	choice := catalog.OptionGroup{ID: 2, Kind: catalog.SingleChoice}
	store := selection.NewStore()

	pick(store, g, topping(10, "CAL", 12), 2)
	pick(store, g, topping(11, "MUS", 9), 1)
	store.SelectSingle(choice, topping(20, "BORDA", 4))

	principal := topping(1, "PIZZA", 30)
	groups := []catalog.OptionGroup{g, choice}

	first := Price(principal, groups, store, false)
	second := Price(principal, groups, store, false)

	assertPrice(t, second.Total, first.Total, "total changed between calls")
	for i := range first.Groups {
		for j := range first.Groups[i].Lines {
			assertPrice(t,
				second.Groups[i].Lines[j].AllocatedPrice,
				first.Groups[i].Lines[j].AllocatedPrice,
				"line price changed between calls",
			)
		}
	}
}

func TestNegativePricesCollapseToZero(t *testing.T) {
	g := catalog.OptionGroup{ID: 1, Kind: catalog.FreeQuantity}
	store := selection.NewStore()

	bad := topping(10, "BAD", 0)
	bad.UnitPrice = decimal.NewFromFloat(-3)
	pick(store, g, bad, 2)

	principal := topping(1, "PIZZA", 0)
	principal.UnitPrice = decimal.NewFromFloat(-1)

	quote := Price(principal, []catalog.OptionGroup{g}, store, false)

	if quote.Total.IsNegative() {
		t.Fatalf("total went negative: %s", quote.Total)
	}
	assertPrice(t, quote.Total, decimal.Zero, "bad catalog rows")
}

func TestUnknownGroupKindContributesZero(t *testing.T) {
	g := catalog.OptionGroup{ID: 1, Kind: catalog.GroupKind("COMBO")}
	store := selection.NewStore()

	principal := topping(1, "PIZZA", 30)
	quote := Price(principal, []catalog.OptionGroup{g}, store, false)

	assertPrice(t, quote.Total, principal.UnitPrice, "unknown kind")
}

func TestEmptySelectionPricesPrincipalOnly(t *testing.T) {
	groups := []catalog.OptionGroup{
		quotaGroup(1, 3),
		{ID: 2, Kind: catalog.SingleChoice},
		{ID: 3, Kind: catalog.FreeQuantity},
	}

	principal := topping(1, "PIZZA", 30)
	quote := Price(principal, groups, selection.NewStore(), false)

	assertPrice(t, quote.Total, principal.UnitPrice, "empty selection")
	for _, gq := range quote.Groups {
		assertPrice(t, gq.Subtotal, decimal.Zero, gq.Name)
	}
}

func TestFreeQuantityMultipliesUnitPrice(t *testing.T) {
	g := catalog.OptionGroup{ID: 1, Kind: catalog.FreeQuantity}
	store := selection.NewStore()

	a := topping(10, "REFRI", 6.5)
	pick(store, g, a, 3)

	principal := topping(1, "BURG", 20)
	quote := Price(principal, []catalog.OptionGroup{g}, store, false)

	assertPrice(t, quote.Total, decimal.NewFromFloat(39.5), "20 + 3×6.5")
}
