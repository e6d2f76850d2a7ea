package engine

import (
	"math/rand"
	"testing"
)

func TestPlaceMines_DistinctAndExactCount(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newGrid(DefaultSize)
		mines := placeMines(g, DefaultMines, rand.New(rand.NewSource(seed)))

		if mines.Len() != DefaultMines {
			t.Fatalf("seed %d: expected %d mines, got %d", seed, DefaultMines, mines.Len())
		}
		seen := map[Coord]bool{}
		for _, c := range mines.Coords() {
			if seen[c] {
				t.Fatalf("seed %d: coordinate %v placed twice", seed, c)
			}
			seen[c] = true
			if !g.at(c.Row, c.Col).IsMine {
				t.Fatalf("seed %d: %v in mine set but not mined on grid", seed, c)
			}
		}
		if n := g.count(func(c *Cell) bool { return c.IsMine }); n != DefaultMines {
			t.Fatalf("seed %d: grid has %d mined cells, want %d", seed, n, DefaultMines)
		}
	}
}

func TestPlaceMines_DenseBoardTerminates(t *testing.T) {
	g := newGrid(3)
	mines := placeMines(g, 8, rand.New(rand.NewSource(7)))
	if mines.Len() != 8 {
		t.Fatalf("expected 8 mines, got %d", mines.Len())
	}
	safe := g.count(func(c *Cell) bool { return !c.IsMine })
	if safe != 1 {
		t.Fatalf("expected exactly one safe cell, got %d", safe)
	}
}

func TestCalculateAdjacent_Fixture3x3(t *testing.T) {
	// * . *
	// . . .
	// . * .
	g := newGrid(3)
	if _, ok := layMines(g, []Coord{{0, 0}, {0, 2}, {2, 1}}); !ok {
		t.Fatal("layMines rejected a valid layout")
	}

	want := map[Coord]int{
		{0, 1}: 2,
		{1, 0}: 2,
		{1, 1}: 3,
		{1, 2}: 2,
		{2, 0}: 1,
		{2, 2}: 1,
	}
	for c, n := range want {
		if got := g.at(c.Row, c.Col).AdjacentMines; got != n {
			t.Fatalf("cell %v: expected %d adjacent mines, got %d", c, n, got)
		}
	}
}

func TestCalculateAdjacent_MatchesBruteForce(t *testing.T) {
	g := newGrid(8)
	placeMines(g, 20, rand.New(rand.NewSource(42)))

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell := g.at(row, col)
			if cell.IsMine {
				continue
			}
			n := 0
			for r := row - 1; r <= row+1; r++ {
				for c := col - 1; c <= col+1; c++ {
					if g.inBounds(r, c) && g.at(r, c).IsMine {
						n++
					}
				}
			}
			if cell.AdjacentMines != n {
				t.Fatalf("cell (%d,%d): adjacency %d, brute force %d", row, col, cell.AdjacentMines, n)
			}
		}
	}
}

func TestLayMines_RejectsBadCoordinates(t *testing.T) {
	if _, ok := layMines(newGrid(3), []Coord{{0, 0}, {0, 0}}); ok {
		t.Fatal("duplicate coordinate should be rejected")
	}
	if _, ok := layMines(newGrid(3), []Coord{{3, 0}}); ok {
		t.Fatal("out of range coordinate should be rejected")
	}
}
