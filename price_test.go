package cardfolio

import "testing"

func TestEstimatePrice(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"", 1},
		{"a", 23},
		{"Pikachu", 20},
		{"Charizard", 37},
		{"Mewtwo", 5},
		{"Base Set", 17},
		{"Pokémon", 72},
		{"😀", 18}, // a surrogate pair counts as two code units
	}
	for _, tt := range tests {
		if got := EstimatePrice(tt.name); got != tt.want {
			t.Errorf("EstimatePrice(%q) = %d want %d", tt.name, got, tt.want)
		}
	}
}

func TestEstimatePriceIsDeterministic(t *testing.T) {
	for _, name := range []string{"Pikachu", "Dark Charizard 1st edition", "ミュウ"} {
		first := EstimatePrice(name)
		for range 3 {
			if got := EstimatePrice(name); got != first {
				t.Errorf("EstimatePrice(%q) = %d then %d", name, first, got)
			}
		}
	}
}

func TestEstimatePriceIsPositive(t *testing.T) {
	// long names overflow the 32 bits hash many times.
	name := ""
	for i := range 500 {
		name += string(rune('A' + i%58))
		if got := EstimatePrice(name); got < 1 || got > 104 {
			t.Fatalf("EstimatePrice(%q) = %d want a value in [1, 104]", name, got)
		}
	}
}
