package engine

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// Cell holds the state of one grid position.
type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int // only meaningful when !IsMine

	Exposed   bool // mine shown after a loss
	Detonated bool // the mine that ended the game
}

// Grid is a fixed size x size board stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// at returns a pointer into the grid. The caller must check bounds first.
func (g *Grid) at(row, col int) *Cell {
	return &g.cells[row*g.size+col]
}

// neighbors calls fn for every in-bounds Moore neighbor of (row, col),
// excluding the cell itself.
func (g *Grid) neighbors(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.inBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

func (g *Grid) count(pred func(c *Cell) bool) int {
	n := 0
	for i := range g.cells {
		if pred(&g.cells[i]) {
			n++
		}
	}
	return n
}
