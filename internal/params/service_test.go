package params

import (
	"context"
	"testing"
)

func TestMaxPriceToppingDefaultsToOff(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if service.MaxPriceTopping(context.Background()) {
		t.Fatalf("unset parameter enabled max-price mode")
	}
}

func TestMaxPriceToppingValueParsing(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"S":     true,
		"true":  true,
		" s ":   true,
		"0":     false,
		"N":     false,
		"false": false,
		"":      false,
	}

	for value, want := range cases {
		repo := NewInMemoryRepository()
		repo.Set(ParamMaxPriceTopping, value)
		service := NewService(repo)

		if got := service.MaxPriceTopping(context.Background()); got != want {
			t.Fatalf("value %q: got %v, want %v", value, got, want)
		}
	}
}
