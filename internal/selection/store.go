package selection

import "touchpos/internal/catalog"

// Line is one selected item inside a group.
// Qty is a plain count for free-quantity groups and a slot count
// for fractional-quota groups.
type Line struct {
	Item catalog.Item
	Qty  int
}

// Store holds the customer's in-progress selection for one menu item.
// It is owned by a single configuration screen and never shared between
// flows; every mutation reports whether it was applied so the screen can
// decide what to re-render. Invalid calls leave the state untouched.
type Store struct {
	lines map[int][]Line
}

func NewStore() *Store {
	return &Store{lines: make(map[int][]Line)}
}

// SelectSingle replaces the group's choice with item.
// Returns false (no mutation) when the group is not single-choice.
func (s *Store) SelectSingle(group catalog.OptionGroup, item catalog.Item) bool {
	if group.Kind != catalog.SingleChoice {
		return false
	}
	s.lines[group.ID] = []Line{{Item: item, Qty: 1}}
	return true
}

// AdjustQuantity bumps item's quantity by delta (+1 or -1).
// Incrementing past the group's Max is refused. Decrementing below 1
// removes the line entirely; no zero-qty entries persist.
func (s *Store) AdjustQuantity(group catalog.OptionGroup, item catalog.Item, delta int) bool {
	if group.Kind == catalog.SingleChoice {
		return false
	}
	if delta != 1 && delta != -1 {
		return false
	}

	lines := s.lines[group.ID]
	idx := -1
	for i, l := range lines {
		if l.Item.ID == item.ID {
			idx = i
			break
		}
	}

	if delta == 1 {
		// Max caps the group total: the shared slot pool for fractional
		// quotas, an optional ceiling for plain quantity groups
		if group.Max > 0 && s.SlotsUsed(group.ID) >= group.Max {
			return false
		}
		if idx < 0 {
			s.lines[group.ID] = append(lines, Line{Item: item, Qty: 1})
			return true
		}
		lines[idx].Qty++
		return true
	}

	// delta == -1
	if idx < 0 {
		return false
	}
	lines[idx].Qty--
	if lines[idx].Qty < 1 {
		s.lines[group.ID] = append(lines[:idx], lines[idx+1:]...)
	}
	return true
}

// Lines returns the group's selected lines in selection order.
func (s *Store) Lines(groupID int) []Line {
	return s.lines[groupID]
}

// Chosen returns the single-choice group's item, if any.
func (s *Store) Chosen(groupID int) (catalog.Item, bool) {
	lines := s.lines[groupID]
	if len(lines) == 0 {
		return catalog.Item{}, false
	}
	return lines[0].Item, true
}

// SlotsUsed is the sum of quantities/slots selected in the group.
func (s *Store) SlotsUsed(groupID int) int {
	total := 0
	for _, l := range s.lines[groupID] {
		total += l.Qty
	}
	return total
}

// Reset discards every selection; the screen calls this after the
// composed item has been handed to the cart.
func (s *Store) Reset() {
	s.lines = make(map[int][]Line)
}
