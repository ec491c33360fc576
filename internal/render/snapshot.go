package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"go.uber.org/zap"
)

// SnapshotWriter stores rendered boards as <dir>/<gameID>-<turn>-<seq>.png.
type SnapshotWriter struct {
	dir      string
	renderer *Renderer
	logger   *zap.Logger

	mu  sync.Mutex
	seq int
}

// NewSnapshotWriter creates dir if needed.
func NewSnapshotWriter(dir string, renderer *Renderer, logger *zap.Logger) (*SnapshotWriter, error) {
	if dir == "" {
		return nil, fmt.Errorf("snapshot dir is empty")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotWriter{dir: dir, renderer: renderer, logger: logger}, nil
}

// Write renders snap and returns the written file path.
func (w *SnapshotWriter) Write(ctx context.Context, snap minichess.Snapshot, opts RenderOptions) (string, error) {
	data, err := w.renderer.RenderPNG(ctx, snap, opts)
	if err != nil {
		return "", fmt.Errorf("render snapshot: %w", err)
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	id := snap.GameID
	if id == "" {
		id = "game"
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s-%03d-%04d.png", id, snap.Turn, seq))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	w.logger.Debug("minichess_snapshot_written", zap.String("path", path), zap.String("game_id", snap.GameID))
	return path, nil
}
