package order

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name                      string
		urgency, complexity, cost int
		want                      float64
	}{
		{name: "all min", urgency: 1, complexity: 1, cost: 10, want: 0.4 + 0.3 + 0},
		{name: "all max", urgency: 10, complexity: 10, cost: 1, want: 4 + 3 + 2.7},
		{name: "midpoint", urgency: 5, complexity: 5, cost: 5, want: 2 + 1.5 + 1.5},
		{name: "cheap and urgent", urgency: 10, complexity: 1, cost: 1, want: 4 + 0.3 + 2.7},
		{name: "expensive and complex", urgency: 1, complexity: 10, cost: 10, want: 0.4 + 3 + 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.urgency, tt.complexity, tt.cost)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	for u := 1; u <= 10; u++ {
		for c := 1; c <= 10; c++ {
			for k := 1; k <= 10; k++ {
				got := Score(u, c, k)
				if got < 0.7 || got > 9.7 {
					t.Fatalf("Score(%d, %d, %d) = %v out of [0.7, 9.7]", u, c, k, got)
				}
				want := 0.4*float64(u) + 0.3*float64(c) + 0.3*float64(10-k)
				if math.Abs(got-want) > 1e-9 {
					t.Fatalf("Score(%d, %d, %d) = %v, want %v", u, c, k, got, want)
				}
			}
		}
	}
}
