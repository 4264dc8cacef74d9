package selection

import (
	"fmt"

	"touchpos/internal/catalog"
)

// Result is the Validation Gate's answer: overall verdict plus the
// reason each failing group is blocking confirmation. The presentation
// layer renders the reasons; nothing here raises an error for an
// incomplete selection.
type Result struct {
	Valid   bool           `json:"valid"`
	Reasons map[int]string `json:"reasons,omitempty"`
}

// Validate checks every group's rules against the current selection.
// Pure and total: safe to call on every keystroke.
func Validate(groups []catalog.OptionGroup, s *Store) Result {
	result := Result{Valid: true, Reasons: make(map[int]string)}

	for _, g := range groups {
		if reason := validateGroup(g, s); reason != "" {
			result.Valid = false
			result.Reasons[g.ID] = reason
		}
	}
	return result
}

func validateGroup(g catalog.OptionGroup, s *Store) string {
	lines := s.Lines(g.ID)

	if g.Kind == catalog.SingleChoice {
		if len(lines) == 0 {
			return "a choice is required"
		}
		return ""
	}

	if g.Required && len(lines) == 0 {
		return "at least one selection is required"
	}

	if g.Min > 0 && s.SlotsUsed(g.ID) < g.Min {
		return fmt.Sprintf("at least %d required", g.Min)
	}

	return ""
}
