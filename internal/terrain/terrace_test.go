package terrain

import (
	"slices"
	"testing"
)

func TestTerraceTable(t *testing.T) {
	tests := []struct {
		steps int
		want  []float64
	}{
		{0, nil},
		{-2, nil},
		{1, []float64{0, 1}},
		{2, []float64{0, 0.5, 1}},
		{4, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tt := range tests {
		got := TerraceTable(tt.steps)
		if !slices.Equal(got, tt.want) {
			t.Errorf("TerraceTable(%d) = %v, want %v", tt.steps, got, tt.want)
		}
	}
}

func TestTerraceTableEndsAtOne(t *testing.T) {
	for steps := 1; steps <= 64; steps++ {
		table := TerraceTable(steps)
		if table[0] != 0 || table[len(table)-1] != 1 {
			t.Fatalf("steps=%d: table %v must start at 0 and end at 1", steps, table)
		}
		for i := 1; i < len(table)-1; i++ {
			if table[i] >= terraceLimit {
				t.Fatalf("steps=%d: inner offset %v not below %v", steps, table[i], terraceLimit)
			}
		}
	}
}

func TestCubify(t *testing.T) {
	table := TerraceTable(4)
	tests := []struct {
		h    float64
		want float64
	}{
		{0, 0},
		{0.1, 0},
		{0.125, 0.25}, // Tie goes up
		{0.2, 0.25},
		{0.6, 0.5},
		{0.99, 0.75},
		{1, 1},
		{2.6, 2.5},
		{3.8, 3.75},
	}
	for _, tt := range tests {
		if got := Cubify(table, tt.h); got != tt.want {
			t.Errorf("Cubify(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestCubifyIdempotent(t *testing.T) {
	for _, steps := range []int{1, 2, 3, 4, 7, 10} {
		table := TerraceTable(steps)
		for h := -5.0; h < 5; h += 0.037 {
			once := Cubify(table, h)
			if twice := Cubify(table, once); twice != once {
				t.Fatalf("steps=%d h=%v: Cubify=%v, again=%v", steps, h, once, twice)
			}
		}
	}
}
