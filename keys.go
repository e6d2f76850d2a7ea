package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Top     key.Binding
	Bottom  key.Binding
	First   key.Binding
	Last    key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d/l", "right")),
	Top:     key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first row")),
	Bottom:  key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last row")),
	First:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "first column")),
	Last:    key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "last column")),
	Reveal:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space/enter", "reveal")),
	Flag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.First, k.Last},
		{k.Reveal, k.Flag, k.Restart, k.Quit},
	}
}
