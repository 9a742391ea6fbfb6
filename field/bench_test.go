package field_test

import (
	"math/rand"
	"testing"

	"github.com/c2huc2hu/jps/field"
)

// BenchmarkNew measures construction (deep copy + validation) of a
// 1000×1000 field with randomly scattered obstacles.
func BenchmarkNew(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			if x+y > 0 && x+y < 2*(n-1) && r.Float64() < 0.3 {
				row[x] = field.Obstacle
			} else {
				row[x] = field.Walkable
			}
		}
		grid[y] = row
	}
	start := field.Point{}
	goals := []field.Point{{X: n - 1, Y: n - 1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := field.New(grid, start, goals); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkHeuristic measures the multi-goal minimum with 16 goals.
func BenchmarkHeuristic(b *testing.B) {
	grid := make([][]float64, 100)
	for y := range grid {
		grid[y] = make([]float64, 100)
		for x := range grid[y] {
			grid[y][x] = field.Walkable
		}
	}
	goals := make([]field.Point, 16)
	for i := range goals {
		goals[i] = field.Point{X: (i * 7) % 100, Y: (i * 13) % 100}
	}
	f, err := field.New(grid, field.Point{X: 50, Y: 50}, goals)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Heuristic(field.Point{X: i % 100, Y: (i * 3) % 100})
	}
}
