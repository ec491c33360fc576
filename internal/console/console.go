// Package console drives a minichess game from line-based text input.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/internal/msgcat"
	"github.com/park285/Cheese-MiniChess/internal/render"
	"github.com/park285/Cheese-MiniChess/pkg/minidto"
	"go.uber.org/zap"
)

// Console is the single controller of one Game.
type Console struct {
	game      *minichess.Game
	formatter *Formatter
	presenter *Presenter
	geom      render.Geometry
	autoRoll  bool
	logger    *zap.Logger

	snapshots *render.SnapshotWriter
	prefix    string
}

type Option func(*Console)

func WithLogger(l *zap.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAutoRoll rolls the dice after every committed move.
func WithAutoRoll(on bool) Option {
	return func(c *Console) { c.autoRoll = on }
}

// WithSnapshots writes a board PNG after each state change.
func WithSnapshots(w *render.SnapshotWriter) Option {
	return func(c *Console) { c.snapshots = w }
}

// WithGeometry sets the pixel layout used by tap.
func WithGeometry(g render.Geometry) Option {
	return func(c *Console) { c.geom = g }
}

func WithPrefix(prefix string) Option {
	return func(c *Console) { c.prefix = prefix }
}

func New(game *minichess.Game, cat *msgcat.Catalog, out io.Writer, opts ...Option) *Console {
	c := &Console{
		game:   game,
		geom:   render.NewGeometry(render.DefaultCellSize),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.formatter = NewFormatter(cat, c.prefix)
	c.presenter = NewPresenter(out, c.snapshots, c.logger)
	return c
}

// Run reads commands until quit, EOF or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	if err := c.presenter.Say(c.formatter.Welcome()); err != nil {
		return err
	}
	if err := c.showBoard(); err != nil {
		return err
	}

	for {
		if err := c.presenter.Prompt(c.formatter.Prompt(c.game.Snapshot())); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			quit, err := c.Execute(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Execute runs one command line. Only output failures are returned as errors.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	cmd, err := parseCommand(line, c.prefix)
	if err != nil {
		var ce minidto.CommandError
		if errors.As(err, &ce) {
			return false, c.presenter.Say(c.formatter.CommandError(ce.Code, ce.Message))
		}
		return false, err
	}

	switch cmd.kind {
	case cmdNone:
		return false, nil
	case cmdClick:
		return false, c.click(ctx, cmd.cell)
	case cmdTap:
		return false, c.tap(ctx, cmd.point)
	case cmdCancel:
		ok := c.game.Cancel()
		if err := c.presenter.Say(c.formatter.Cancelled(ok)); err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		return false, c.refresh(ctx)
	case cmdRoll:
		return false, c.roll(ctx)
	case cmdBoard:
		return false, c.showBoard()
	case cmdState:
		return false, c.showState()
	case cmdNew:
		c.game.Reset()
		if err := c.presenter.Say(c.formatter.NewGame(c.game.ID())); err != nil {
			return false, err
		}
		return false, c.refresh(ctx)
	case cmdHelp:
		return false, c.presenter.Say(c.formatter.Help())
	case cmdQuit:
		return true, c.presenter.Say(c.formatter.Bye())
	}
	return false, nil
}

func (c *Console) tap(ctx context.Context, pt image.Point) error {
	if c.geom.RollButtonAt(pt) {
		return c.roll(ctx)
	}
	cell, ok := c.geom.CellAt(pt)
	if !ok {
		return c.presenter.Say(c.formatter.OffBoard(pt.X, pt.Y))
	}
	return c.click(ctx, cell)
}

func (c *Console) click(ctx context.Context, cell minichess.Cell) error {
	before := c.game.Snapshot()
	outcome := c.game.CellClicked(cell)

	var msg string
	switch outcome {
	case minichess.Selected:
		p, _ := before.Board.PieceAt(cell)
		sel := c.game.Selection()
		msg = c.formatter.Selected(p, cell, len(sel.Moves))
	case minichess.Moved:
		from := before.Selection.From
		p, _ := before.Board.PieceAt(from)
		captured, _ := before.Board.PieceAt(cell)
		msg = c.formatter.Moved(p, from, cell, captured, c.game.SideToMove())
	default:
		return c.presenter.Say(c.formatter.Ignored(cell))
	}
	if err := c.presenter.Say(msg); err != nil {
		return err
	}
	if outcome == minichess.Moved && c.autoRoll {
		if err := c.presenter.Say(c.formatter.Rolled(c.game.Roll())); err != nil {
			return err
		}
	}
	return c.refresh(ctx)
}

func (c *Console) roll(ctx context.Context) error {
	if err := c.presenter.Say(c.formatter.Rolled(c.game.Roll())); err != nil {
		return err
	}
	return c.writeImage(ctx, c.game.Snapshot())
}

// refresh prints the board and writes an image of the new state.
func (c *Console) refresh(ctx context.Context) error {
	if err := c.showBoard(); err != nil {
		return err
	}
	return c.writeImage(ctx, c.game.Snapshot())
}

func (c *Console) showBoard() error {
	snap := c.game.Snapshot()
	return c.presenter.Say(c.formatter.Board(snap) + "\n" + c.formatter.Status(snap))
}

func (c *Console) showState() error {
	b, err := json.MarshalIndent(ToDTOState(c.game.Snapshot()), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return c.presenter.Say(string(b))
}

// writeImage reports snapshot failures to the player and keeps going.
func (c *Console) writeImage(ctx context.Context, snap minichess.Snapshot) error {
	path, err := c.presenter.Image(ctx, snap, c.formatter.RenderOptions(snap))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return c.presenter.Say(c.formatter.SnapshotFailed(err))
	}
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return c.presenter.Say(c.formatter.SnapshotWritten(path))
}
