package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultCellSize = 100
	minCellSize     = 24
	maxCellSize     = 400
)

type AppConfig struct {
	Prefix string

	SnapshotDir string
	CellSize    int

	MessagesDir string

	DiceSeed    uint64
	HasDiceSeed bool
	AutoRoll    bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		CellSize: defaultCellSize,
	}

	cfg.Prefix = strings.TrimSpace(os.Getenv("MINICHESS_PREFIX"))
	cfg.SnapshotDir = strings.TrimSpace(os.Getenv("MINICHESS_SNAPSHOT_DIR"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("MINICHESS_MESSAGES_DIR"))

	if v := strings.TrimSpace(os.Getenv("MINICHESS_CELL_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MINICHESS_CELL_SIZE: %w", err)
		}
		if n < minCellSize || n > maxCellSize {
			return nil, fmt.Errorf("MINICHESS_CELL_SIZE must be between %d and %d, got %d", minCellSize, maxCellSize, n)
		}
		cfg.CellSize = n
	}

	if v := strings.TrimSpace(os.Getenv("MINICHESS_DICE_SEED")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MINICHESS_DICE_SEED: %w", err)
		}
		cfg.DiceSeed = n
		cfg.HasDiceSeed = true
	}

	if v := strings.TrimSpace(os.Getenv("MINICHESS_AUTO_ROLL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.AutoRoll = b
		}
	}

	if cfg.MessagesDir != "" {
		if st, err := os.Stat(cfg.MessagesDir); err != nil || !st.IsDir() {
			return nil, fmt.Errorf("MINICHESS_MESSAGES_DIR %q is not a directory", cfg.MessagesDir)
		}
	}

	return cfg, nil
}
