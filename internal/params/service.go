package params

import (
	"context"
	"log"
	"strings"
)

// ParamMaxPriceTopping switches fractional-quota pricing from the
// proportional split to charging only the most expensive topping.
const ParamMaxPriceTopping = "P660"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MaxPriceTopping resolves the pricing policy flag.
// Missing or unreadable parameters default to the proportional split.
func (s *Service) MaxPriceTopping(ctx context.Context) bool {
	value, err := s.repo.Get(ctx, ParamMaxPriceTopping)
	if err != nil {
		if err != ErrNotFound {
			log.Println("params: falling back to proportional pricing:", err)
		}
		return false
	}
	return enabled(value)
}

func enabled(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "1", "S", "TRUE", "Y":
		return true
	}
	return false
}
