package engine

// reveal opens (row, col) and flood-fills across zero-count cells. It
// returns the newly revealed coordinates in visiting order. Out of range,
// revealed and flagged cells are skipped silently. Mines are never opened
// here; the state machine handles a clicked mine before calling reveal.
func reveal(g *Grid, row, col int) []Coord {
	var opened []Coord

	stack := []Coord{{Row: row, Col: col}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.inBounds(cur.Row, cur.Col) {
			continue
		}
		cell := g.at(cur.Row, cur.Col)
		if cell.IsRevealed || cell.IsFlagged || cell.IsMine {
			continue
		}

		cell.IsRevealed = true
		opened = append(opened, cur)

		if cell.AdjacentMines > 0 {
			continue
		}
		g.neighbors(cur.Row, cur.Col, func(r, c int) {
			if !g.at(r, c).IsRevealed {
				stack = append(stack, Coord{Row: r, Col: c})
			}
		})
	}

	return opened
}
