package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/locale"
)

// setupModel lets the player pick the language before the board is dealt.
type setupModel struct {
	cursor int
	lang   locale.Language
	done   bool
}

func initialSetupModel() setupModel {
	return setupModel{lang: locale.English}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (setupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(locale.Languages)-1 {
				m.cursor++
			}
		case msg.String() == "enter":
			m.lang = locale.Languages[m.cursor]
			m.done = true
		}
	}
	return m, nil
}

func (m setupModel) View() string {
	tr := locale.New(locale.Languages[m.cursor])

	var b strings.Builder
	b.WriteString(titleStyle.Render(tr.Get("Choose a language")))
	b.WriteString("\n\n" + tr.Get("Up/down to choose, enter to start.") + "\n\n")
	for i, lang := range locale.Languages {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + lang.String()))
		} else {
			b.WriteString("  " + lang.String())
		}
		b.WriteString("\n")
	}
	return boardStyle.Render(b.String())
}
