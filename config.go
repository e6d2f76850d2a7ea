package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Grzrzegorzrz/ssh-minesweeper/internal/engine"
)

type config struct {
	host        string
	port        int
	hostKeyPath string
	size        int
	mines       int
	logLevel    logrus.Level
}

func parseConfig(args []string, output io.Writer) (config, error) {
	var (
		cfg   config
		level string
	)
	fs := flag.NewFlagSet("ssh-minesweeper", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.host, "host", "0.0.0.0", "address to listen on")
	fs.IntVar(&cfg.port, "port", 2222, "SSH port")
	fs.StringVar(&cfg.hostKeyPath, "host-key", ".ssh/id_ed25519", "path to the server host key, created if missing")
	fs.IntVar(&cfg.size, "size", engine.DefaultSize, "board side length")
	fs.IntVar(&cfg.mines, "mines", engine.DefaultMines, "number of mines")
	fs.StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return config{}, err
	}
	cfg.logLevel = lvl

	if cfg.port <= 0 || cfg.port > 65535 {
		return config{}, fmt.Errorf("port %d out of range", cfg.port)
	}
	if err := cfg.engineConfig(nil).Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) engineConfig(logger logrus.FieldLogger) engine.Config {
	return engine.Config{
		Size:   c.size,
		Mines:  c.mines,
		Logger: logger,
	}
}
