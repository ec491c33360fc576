package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/internal/render"
	"go.uber.org/zap"
)

// Presenter delivers console text and, when configured, board images.
type Presenter struct {
	out       io.Writer
	snapshots *render.SnapshotWriter
	logger    *zap.Logger
}

func NewPresenter(out io.Writer, snapshots *render.SnapshotWriter, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{out: out, snapshots: snapshots, logger: logger}
}

// Say writes message followed by a newline. Blank messages are dropped.
func (p *Presenter) Say(message string) error {
	if strings.TrimSpace(message) == "" {
		return nil
	}
	_, err := fmt.Fprintln(p.out, message)
	return err
}

// Prompt writes without a trailing newline.
func (p *Presenter) Prompt(prompt string) error {
	_, err := io.WriteString(p.out, prompt)
	return err
}

// Image writes a board snapshot. It reports ("", nil) when snapshots are disabled.
func (p *Presenter) Image(ctx context.Context, snap minichess.Snapshot, opts render.RenderOptions) (string, error) {
	if p.snapshots == nil {
		return "", nil
	}
	path, err := p.snapshots.Write(ctx, snap, opts)
	if err != nil {
		p.logger.Warn("minichess_snapshot_failed", zap.String("game_id", snap.GameID), zap.Error(err))
		return "", err
	}
	return path, nil
}
