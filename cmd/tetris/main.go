package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/gridfall/tetris"
	"github.com/plus3/gridfall/tetris/debugui"
)

const (
	windowTitle = "gridfall"
	sidePanel   = 200
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to the config file; environment variables apply when absent.")
	flag.Parse()

	conf := MustLoad(*configPath)
	logger := initLogger(conf)

	newSession := func() *tetris.Session {
		if conf.Seed != 0 {
			return tetris.NewSessionFrom(rand.NewPCG(conf.Seed, conf.Seed))
		}
		return tetris.NewSession()
	}

	game := &Game{
		session:    newSession(),
		newSession: newSession,
		logger:     logger,
		cellSize:   conf.CellSize,
		width:      conf.CellSize*tetris.Cols + sidePanel,
		height:     conf.CellSize * tetris.Rows,
	}

	if conf.DebugOverlay {
		game.overlay = debugui.NewOverlay(120)
		game.overlay.CreateWindow(windowTitle, game.width, game.height)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	} else {
		ebiten.SetWindowSize(game.width, game.height)
		ebiten.SetWindowTitle(windowTitle)
	}

	logger.Info("session started", "seed", conf.Seed, "debug-overlay", conf.DebugOverlay)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}

func initLogger(conf *Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
