package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/engine"
	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/locale"
)

// tickMsg carries the timer generation it was scheduled for, so ticks from
// a previous game are dropped by the engine.
type tickMsg struct {
	gen uint64
}

func tick(gen uint64) tea.Cmd {
	return tea.Tick(engine.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

type boardModel struct {
	game    *engine.Game
	tr      *locale.Translator
	help    help.Model
	cursorX int
	cursorY int
	gFlag   int
	notice  string
}

func newBoardModel(game *engine.Game, tr *locale.Translator) boardModel {
	h := help.New()
	h.ShowAll = true
	return boardModel{
		game: game,
		tr:   tr,
		help: h,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tick(m.game.TimerGeneration())
}

func (m boardModel) Update(msg tea.Msg) (boardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.game.Tick(msg.gen) {
			return m, tick(msg.gen)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	if m.gFlag == 1 {
		m.gFlag = 2
	}
	size := m.game.Size()
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursorY > 0 {
			m.cursorY--
		}
	case key.Matches(msg, keys.Down):
		if m.cursorY < size-1 {
			m.cursorY++
		}
	case key.Matches(msg, keys.Left):
		if m.cursorX > 0 {
			m.cursorX--
		}
	case key.Matches(msg, keys.Right):
		if m.cursorX < size-1 {
			m.cursorX++
		}
	case key.Matches(msg, keys.Bottom):
		m.cursorY = size - 1
	case key.Matches(msg, keys.Top):
		if m.gFlag == 2 {
			m.cursorY = 0
			m.gFlag = 0
		} else {
			m.gFlag = 1
		}
	case key.Matches(msg, keys.First):
		m.cursorX = 0
	case key.Matches(msg, keys.Last):
		m.cursorX = size - 1
	case key.Matches(msg, keys.Reveal):
		if m.game.Status().Terminal() {
			cmd = m.restart()
		} else {
			m.apply(m.game.HandlePrimaryAction(m.cursorY, m.cursorX))
		}
	case key.Matches(msg, keys.Flag):
		m.apply(m.game.HandleSecondaryAction(m.cursorY, m.cursorX))
	case key.Matches(msg, keys.Restart):
		cmd = m.restart()
	}

	if m.gFlag == 2 {
		m.gFlag = 0
	}
	return m, cmd
}

// apply turns the engine's end-of-game signal into the banner.
func (m *boardModel) apply(out engine.Outcome) {
	if !out.Ended {
		return
	}
	if out.Status == engine.Won {
		m.notice = winStyle.Render(m.tr.Get("YOU WIN! Press r to restart or q to quit."))
	} else {
		m.notice = loseStyle.Render(m.tr.Get("GAME OVER! Press r to restart or q to quit."))
	}
}

func (m *boardModel) restart() tea.Cmd {
	m.game.Init()
	m.notice = ""
	return tick(m.game.TimerGeneration())
}

func (m boardModel) View() string {
	snap := m.game.Snapshot()
	var board strings.Builder

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			char, style := glyph(snap.Cells[y][x])
			rendered := style.Render(fmt.Sprintf(" %s ", char))
			if x == m.cursorX && y == m.cursorY {
				rendered = cursorStyle.Render(fmt.Sprintf(" %s ", char))
			}
			board.WriteString(rendered)
		}
		if y < snap.Size-1 {
			board.WriteString("\n")
		}
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.tr.Get("Minesweeper Over SSH!")))
	s.WriteString("\n")
	s.WriteString(boardStyle.Render(board.String()))
	s.WriteString(statusStyle.Render("\n" + m.tr.Get("Mines: %d | Time: %d | Status: %s",
		snap.MinesRemaining, int(snap.Elapsed/time.Second), statusText(snap.Status, m.tr))))

	if snap.Status.Terminal() {
		s.WriteString("\n\n" + m.notice)
	} else {
		s.WriteString("\n\n" + m.help.View(keys))
	}
	return s.String()
}

func glyph(c engine.Cell) (string, lipgloss.Style) {
	switch {
	case c.Detonated:
		return "X", detonatedStyle
	case c.Exposed:
		return "*", bombStyle
	case c.IsRevealed && c.AdjacentMines > 0:
		return fmt.Sprintf("%d", c.AdjacentMines), numStyles[c.AdjacentMines-1]
	case c.IsRevealed:
		return ".", hiddenStyle
	case c.IsFlagged:
		return "F", flagStyle
	default:
		return "#", hiddenStyle
	}
}

func statusText(s engine.Status, tr *locale.Translator) string {
	switch s {
	case engine.Lost:
		return tr.Get("Defeat")
	case engine.Won:
		return tr.Get("Victory")
	default:
		return tr.Get("Sweeping...")
	}
}

var (
	cursorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("7"))
	bombStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	detonatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	numStyles      = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Italic(true).MarginTop(1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)
