package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appcfg "github.com/park285/Cheese-MiniChess/internal/config"
	"github.com/park285/Cheese-MiniChess/internal/console"
	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/internal/msgcat"
	"github.com/park285/Cheese-MiniChess/internal/obslog"
	"github.com/park285/Cheese-MiniChess/internal/render"
	"go.uber.org/zap"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		logger.Fatal("msgcat_init_failed", zap.Error(err))
	}

	var roller minichess.Roller = minichess.NewDiceRoller()
	if cfg.HasDiceSeed {
		roller = minichess.NewSeededDiceRoller(cfg.DiceSeed)
	}
	game := minichess.NewGame(
		minichess.WithLogger(obslog.Named("game")),
		minichess.WithRoller(roller),
	)

	renderer := render.NewRenderer(cfg.CellSize, render.WithLogger(obslog.Named("render")))
	opts := []console.Option{
		console.WithLogger(obslog.Named("console")),
		console.WithPrefix(cfg.Prefix),
		console.WithAutoRoll(cfg.AutoRoll),
		console.WithGeometry(renderer.Geometry()),
	}
	if cfg.SnapshotDir != "" {
		w, err := render.NewSnapshotWriter(cfg.SnapshotDir, renderer, obslog.Named("snapshot"))
		if err != nil {
			logger.Fatal("snapshot_writer_init_failed", zap.String("dir", cfg.SnapshotDir), zap.Error(err))
		}
		opts = append(opts, console.WithSnapshots(w))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigCh:
			logger.Info("shutdown_signal", zap.String("signal", s.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("minichess_console_start",
		zap.String("game_id", game.ID()),
		zap.Int("cell_size", cfg.CellSize),
		zap.String("snapshot_dir", cfg.SnapshotDir),
		zap.Bool("auto_roll", cfg.AutoRoll),
	)
	if err := console.New(game, cat, os.Stdout, opts...).Run(ctx, os.Stdin); err != nil {
		logger.Error("console_failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
