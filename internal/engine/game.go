// Package engine implements the minesweeper game state: grid, mine
// placement, flood-fill reveal, flag bookkeeping and win/loss detection.
// A Game is not safe for concurrent use; each player session owns one.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s != Playing
}

var ErrInvalidConfig = errors.New("invalid board configuration")

const (
	DefaultSize  = 10
	DefaultMines = 15
)

type Config struct {
	Size   int
	Mines  int
	Logger logrus.FieldLogger
	Rand   *rand.Rand
}

func DefaultConfig() Config {
	return Config{Size: DefaultSize, Mines: DefaultMines}
}

// Validate rejects boards the placement loop could never fill.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, c.Size)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w: mine count %d is negative", ErrInvalidConfig, c.Mines)
	}
	if c.Mines >= c.Size*c.Size {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board", ErrInvalidConfig, c.Mines, c.Size, c.Size)
	}
	return nil
}

// Outcome describes the effect of one player action.
type Outcome struct {
	Changed []Coord // cells whose visible state changed
	Status  Status
	Ended   bool // this action moved the game to Won or Lost
}

type Game struct {
	size     int
	numMines int
	log      logrus.FieldLogger
	rng      *rand.Rand
	layout   []Coord // fixed mines, nil for random placement

	grid    *Grid
	mines   *MineSet
	status  Status
	flagged int
	timer   timer
}

// New validates cfg and starts a game with randomly placed mines.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := newGame(cfg)
	g.Init()
	return g, nil
}

// NewWithLayout starts a game with mines at exactly the given coordinates.
// Init on such a game restores the same layout.
func NewWithLayout(size int, mines []Coord, logger logrus.FieldLogger) (*Game, error) {
	cfg := Config{Size: size, Mines: len(mines), Logger: logger}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := layMines(newGrid(size), mines); !ok {
		return nil, fmt.Errorf("%w: mine layout has duplicate or out of range coordinates", ErrInvalidConfig)
	}
	g := newGame(cfg)
	g.layout = append([]Coord(nil), mines...)
	g.Init()
	return g, nil
}

func newGame(cfg Config) *Game {
	g := &Game{
		size:     cfg.Size,
		numMines: cfg.Mines,
		log:      cfg.Logger,
		rng:      cfg.Rand,
	}
	if g.log == nil {
		g.log = logrus.StandardLogger()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Init discards the current board and deals a new one. The previous timer
// generation is cancelled before the new one starts.
func (g *Game) Init() {
	g.timer.stop()

	g.grid = newGrid(g.size)
	if g.layout != nil {
		g.mines, _ = layMines(g.grid, g.layout)
	} else {
		g.mines = placeMines(g.grid, g.numMines, g.rng)
	}
	g.status = Playing
	g.flagged = 0
	g.timer.start()

	g.log.WithFields(logrus.Fields{
		"size":  g.size,
		"mines": g.numMines,
		"timer": g.timer.gen,
	}).Info("new game")
}

// HandlePrimaryAction reveals (row, col). A mine ends the game.
func (g *Game) HandlePrimaryAction(row, col int) Outcome {
	if g.status.Terminal() || !g.grid.inBounds(row, col) {
		return g.outcome(nil, false)
	}
	cell := g.grid.at(row, col)
	if cell.IsFlagged || cell.IsRevealed {
		return g.outcome(nil, false)
	}

	if cell.IsMine {
		cell.Detonated = true
		changed := g.exposeMines()
		g.finish(Lost)
		return g.outcome(changed, true)
	}

	opened := reveal(g.grid, row, col)
	g.log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"revealed": len(opened),
	}).Debug("reveal")

	return g.outcome(opened, g.evaluateWin())
}

// HandleSecondaryAction toggles the flag on an unrevealed cell. New flags
// are refused once every mine has a flag; removing one is always allowed.
func (g *Game) HandleSecondaryAction(row, col int) Outcome {
	if g.status.Terminal() || !g.grid.inBounds(row, col) {
		return g.outcome(nil, false)
	}
	cell := g.grid.at(row, col)
	if cell.IsRevealed {
		return g.outcome(nil, false)
	}

	var changed []Coord
	switch {
	case cell.IsFlagged:
		cell.IsFlagged = false
		g.flagged--
		changed = []Coord{{Row: row, Col: col}}
	case g.flagged < g.numMines:
		cell.IsFlagged = true
		g.flagged++
		changed = []Coord{{Row: row, Col: col}}
	}

	g.log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"flagged": g.flagged,
	}).Debug("flag")

	return g.outcome(changed, g.evaluateWin())
}

func (g *Game) outcome(changed []Coord, ended bool) Outcome {
	return Outcome{Changed: changed, Status: g.status, Ended: ended}
}

// exposeMines marks every mine for display without flood-filling.
func (g *Game) exposeMines() []Coord {
	coords := g.mines.Coords()
	for _, c := range coords {
		g.grid.at(c.Row, c.Col).Exposed = true
	}
	return coords
}

// evaluateWin finishes the game when every safe cell is revealed, or when
// the flags sit on all mines and nowhere else.
func (g *Game) evaluateWin() bool {
	revealed := g.grid.count(func(c *Cell) bool { return c.IsRevealed })
	flaggedMines := g.grid.count(func(c *Cell) bool { return c.IsMine && c.IsFlagged })

	safe := g.size*g.size - g.numMines
	if revealed == safe || (flaggedMines == g.numMines && g.flagged == g.numMines) {
		g.finish(Won)
		return true
	}
	return false
}

func (g *Game) finish(s Status) {
	g.status = s
	g.timer.stop()
	g.log.WithFields(logrus.Fields{
		"status":  s,
		"elapsed": g.timer.elapsed,
		"flagged": g.flagged,
	}).Info("game over")
}

func (g *Game) Size() int           { return g.size }
func (g *Game) Mines() int          { return g.numMines }
func (g *Game) Status() Status      { return g.status }
func (g *Game) FlaggedCount() int   { return g.flagged }
func (g *Game) MinesRemaining() int { return g.numMines - g.flagged }

// MineSet returns the mined coordinates in placement order.
func (g *Game) MineSet() []Coord { return g.mines.Coords() }

// Cell returns a copy of the cell at (row, col).
func (g *Game) Cell(row, col int) (Cell, bool) {
	if !g.grid.inBounds(row, col) {
		return Cell{}, false
	}
	return *g.grid.at(row, col), true
}
