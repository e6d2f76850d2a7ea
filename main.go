package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/sirupsen/logrus"

	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/engine"
	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/locale"
)

type appModel struct {
	setup   setupModel
	board   boardModel
	stage   int // 0 = setup, 1 = game
	newGame func() (*engine.Game, error)
	log     logrus.FieldLogger
}

func (a appModel) Init() tea.Cmd {
	return nil
}

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Quit) {
		return a, tea.Quit
	}

	if a.stage == 0 {
		var cmd tea.Cmd
		a.setup, cmd = a.setup.Update(msg)
		if a.setup.done {
			game, err := a.newGame()
			if err != nil {
				a.log.WithError(err).Error("cannot start game")
				return a, tea.Quit
			}
			a.board = newBoardModel(game, locale.New(a.setup.lang))
			a.stage = 1
			return a, tea.Batch(cmd, a.board.Init())
		}
		return a, cmd
	}

	var cmd tea.Cmd
	a.board, cmd = a.board.Update(msg)
	return a, cmd
}

func (a appModel) View() string {
	if a.stage == 0 {
		return a.setup.View()
	}
	return a.board.View()
}

// teaHandler gives every session its own game so players never share state.
func teaHandler(cfg config, log *logrus.Logger) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		sessionLog := log.WithFields(logrus.Fields{
			"user":   s.User(),
			"remote": s.RemoteAddr().String(),
		})
		m := appModel{
			setup: initialSetupModel(),
			stage: 0,
			log:   sessionLog,
			newGame: func() (*engine.Game, error) {
				return engine.New(cfg.engineConfig(sessionLog))
			},
		}
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	log := logrus.New()
	log.SetLevel(cfg.logLevel)

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.host, strconv.Itoa(cfg.port))),
		wish.WithHostKeyPath(cfg.hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(cfg, log)),
			logging.MiddlewareWithLogger(log),
		),
	)
	if err != nil {
		log.WithError(err).Fatal("could not create server")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.WithFields(logrus.Fields{
		"host":  cfg.host,
		"port":  cfg.port,
		"size":  cfg.size,
		"mines": cfg.mines,
	}).Info("starting SSH server")
	go func() {
		if err = s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.WithError(err).Error("could not start server")
			done <- nil
		}
	}()

	<-done
	log.Info("stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.WithError(err).Error("could not stop server")
	}
}
