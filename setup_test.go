package main

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/engine"
	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/locale"
)

func TestSetup_ChoosesLanguage(t *testing.T) {
	m := initialSetupModel()
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(enter)

	if !m.done || m.lang != locale.Spanish {
		t.Fatalf("expected Spanish selected, got done=%v lang=%v", m.done, m.lang)
	}
}

func quietApp(newGame func() (*engine.Game, error)) appModel {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return appModel{setup: initialSetupModel(), log: log, newGame: newGame}
}

func TestApp_StartsGameAfterSetup(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	a := quietApp(func() (*engine.Game, error) {
		return engine.New(engine.Config{Size: 5, Mines: 3, Logger: log})
	})

	model, cmd := a.Update(enter)
	a = model.(appModel)
	if a.stage != 1 {
		t.Fatalf("expected game stage, got %d", a.stage)
	}
	if cmd == nil {
		t.Fatal("starting the game should schedule the timer")
	}
	if a.board.game.Size() != 5 {
		t.Fatalf("unexpected board size %d", a.board.game.Size())
	}
}

func TestApp_QuitKey(t *testing.T) {
	a := quietApp(nil)
	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestApp_EngineErrorQuits(t *testing.T) {
	a := quietApp(func() (*engine.Game, error) {
		return nil, errors.New("boom")
	})
	_, cmd := a.Update(enter)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("engine failure should end the session")
	}
}
