package engine

import "time"

// Snapshot is a detached copy of the game state for rendering.
type Snapshot struct {
	Size           int
	Mines          int
	Status         Status
	Flagged        int
	MinesRemaining int
	Elapsed        time.Duration
	Cells          [][]Cell
}

func (g *Game) Snapshot() Snapshot {
	cells := make([][]Cell, g.size)
	for row := range cells {
		cells[row] = make([]Cell, g.size)
		copy(cells[row], g.grid.cells[row*g.size:(row+1)*g.size])
	}
	return Snapshot{
		Size:           g.size,
		Mines:          g.numMines,
		Status:         g.status,
		Flagged:        g.flagged,
		MinesRemaining: g.MinesRemaining(),
		Elapsed:        g.Elapsed(),
		Cells:          cells,
	}
}
