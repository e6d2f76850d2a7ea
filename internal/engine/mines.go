package engine

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// MineSet is the set of mined coordinates, kept in placement order.
type MineSet struct {
	set   mapset.Set[Coord]
	order []Coord
}

func newMineSet(capacity int) *MineSet {
	return &MineSet{
		set:   mapset.New[Coord](),
		order: make([]Coord, 0, capacity),
	}
}

func (m *MineSet) add(c Coord) bool {
	if m.set.Has(c) {
		return false
	}
	m.set.Put(c)
	m.order = append(m.order, c)
	return true
}

func (m *MineSet) Has(c Coord) bool { return m.set.Has(c) }

func (m *MineSet) Len() int { return m.set.Size() }

// Coords returns a copy of the mined coordinates in placement order.
func (m *MineSet) Coords() []Coord {
	out := make([]Coord, len(m.order))
	copy(out, m.order)
	return out
}

// placeMines samples uniformly random coordinates until count distinct cells
// are mined, then recomputes adjacency. count must be below size*size.
func placeMines(g *Grid, count int, r *rand.Rand) *MineSet {
	mines := newMineSet(count)
	for mines.Len() < count {
		c := Coord{Row: r.Intn(g.size), Col: r.Intn(g.size)}
		if !mines.add(c) {
			continue
		}
		g.at(c.Row, c.Col).IsMine = true
	}
	calculateAdjacent(g)
	return mines
}

// layMines marks a fixed list of coordinates. It returns false on a
// duplicate or out of range coordinate.
func layMines(g *Grid, coords []Coord) (*MineSet, bool) {
	mines := newMineSet(len(coords))
	for _, c := range coords {
		if !g.inBounds(c.Row, c.Col) || !mines.add(c) {
			return nil, false
		}
		g.at(c.Row, c.Col).IsMine = true
	}
	calculateAdjacent(g)
	return mines, true
}

func calculateAdjacent(g *Grid) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cell := g.at(row, col)
			if cell.IsMine {
				continue
			}
			count := 0
			g.neighbors(row, col, func(r, c int) {
				if g.at(r, c).IsMine {
					count++
				}
			})
			cell.AdjacentMines = count
		}
	}
}
