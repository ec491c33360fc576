// Package minichess implements the rules engine and turn controller of a 3x5
// chess variant played with kings, knights, bishops and pawns.
package minichess

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the turn state machine's state.
type Phase uint8

const (
	// Selecting waits for the side to move to pick one of its pieces.
	Selecting Phase = iota
	// Moving waits for a destination among the selection's legal moves.
	Moving
)

func (p Phase) String() string {
	if p == Moving {
		return "moving"
	}
	return "selecting"
}

// Outcome reports what a click did.
type Outcome uint8

const (
	Ignored Outcome = iota
	Selected
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	default:
		return "ignored"
	}
}

// Selection is the chosen origin and its legal destinations, in generation order.
type Selection struct {
	From  Cell   `json:"from"`
	Moves []Cell `json:"moves"`
}

func (s *Selection) clone() *Selection {
	if s == nil {
		return nil
	}
	return &Selection{From: s.From, Moves: append([]Cell(nil), s.Moves...)}
}

// Snapshot is a detached copy of the game state for rendering.
type Snapshot struct {
	GameID     string
	Board      Board
	SideToMove Color
	Phase      Phase
	Selection  *Selection
	Dice       DiceRoll
	Turn       int
	Checkmate  bool
}

// Game owns the board and turn state of one match. It is driven by a single
// controller and is not safe for concurrent use.
type Game struct {
	id        string
	board     *Board
	side      Color
	phase     Phase
	selection *Selection
	dice      DiceRoll
	turn      int

	roller Roller
	base   *zap.Logger
	logger *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.base = l
		}
	}
}

// WithRoller replaces the dice source.
func WithRoller(r Roller) Option {
	return func(g *Game) {
		if r != nil {
			g.roller = r
		}
	}
}

// WithBoard starts from a copy of b instead of the initial layout.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b.Clone()
		}
	}
}

// WithSideToMove sets who moves first.
func WithSideToMove(c Color) Option {
	return func(g *Game) { g.side = c }
}

// NewGame starts a game: initial layout, White to move, awaiting selection.
func NewGame(opts ...Option) *Game {
	g := &Game{
		id:     uuid.NewString(),
		board:  NewBoard(),
		side:   White,
		phase:  Selecting,
		base:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.roller == nil {
		g.roller = NewDiceRoller()
	}
	g.logger = g.base.With(zap.String("game_id", g.id))
	g.logger.Info("minichess_game_start", zap.String("board", g.board.String()), zap.String("side_to_move", g.side.String()))
	return g
}

func (g *Game) ID() string            { return g.id }
func (g *Game) SideToMove() Color     { return g.side }
func (g *Game) Phase() Phase          { return g.phase }
func (g *Game) Turn() int             { return g.turn }
func (g *Game) Dice() DiceRoll        { return g.dice }
func (g *Game) Board() *Board         { return g.board.Clone() }
func (g *Game) Selection() *Selection { return g.selection.clone() }

// IsCheckmate always reports false; mate detection is not part of this ruleset.
func (g *Game) IsCheckmate() bool { return false }

// CellClicked advances the turn state machine by one click. Clicks that do not
// apply to the current phase are ignored and leave the game unchanged.
func (g *Game) CellClicked(c Cell) Outcome {
	if !IsValidCell(c) {
		g.ignore(c, "out_of_bounds")
		return Ignored
	}
	switch g.phase {
	case Selecting:
		return g.selectPiece(c)
	case Moving:
		return g.commit(c)
	default:
		g.ignore(c, "unknown_phase")
		return Ignored
	}
}

func (g *Game) selectPiece(c Cell) Outcome {
	piece := g.board.at(c)
	if piece.IsEmpty() {
		g.ignore(c, "empty_cell")
		return Ignored
	}
	if !SameColor(g.side, piece.Color) {
		g.ignore(c, "not_side_to_move")
		return Ignored
	}

	g.selection = &Selection{From: c, Moves: piece.MovesFrom(g.board, c)}
	g.phase = Moving
	g.logger.Debug("minichess_select",
		zap.Stringer("cell", c),
		zap.Stringer("piece", piece),
		zap.Int("moves", len(g.selection.Moves)),
	)
	return Selected
}

func (g *Game) commit(c Cell) Outcome {
	if g.selection == nil || !containsCell(g.selection.Moves, c) {
		g.ignore(c, "not_a_destination")
		return Ignored
	}

	from := g.selection.From
	moved := g.board.at(from)
	captured := g.board.at(c)
	if err := g.board.ApplyMove(from, c); err != nil {
		g.logger.Error("minichess_apply_move_error", zap.Stringer("from", from), zap.Stringer("to", c), zap.Error(err))
		return Ignored
	}

	g.selection = nil
	g.side = g.side.Opposite()
	g.phase = Selecting
	g.turn++
	g.logger.Info("minichess_move",
		zap.Stringer("from", from),
		zap.Stringer("to", c),
		zap.Stringer("piece", moved),
		zap.Stringer("captured", captured),
		zap.Bool("promoted", g.board.at(c).Kind != moved.Kind),
		zap.String("side_to_move", g.side.String()),
		zap.Int("turn", g.turn),
	)
	return Moved
}

func (g *Game) ignore(c Cell, reason string) {
	g.logger.Debug("minichess_click_ignored",
		zap.Stringer("cell", c),
		zap.String("reason", reason),
		zap.Stringer("phase", g.phase),
	)
}

// Cancel drops the active selection without moving. It reports false when there was none.
func (g *Game) Cancel() bool {
	if g.phase != Moving {
		return false
	}
	from := g.selection.From
	g.selection = nil
	g.phase = Selecting
	g.logger.Debug("minichess_cancel", zap.Stringer("cell", from))
	return true
}

// Roll rolls and stores the dice.
func (g *Game) Roll() DiceRoll {
	g.dice = g.roller.Roll()
	g.logger.Debug("minichess_dice_roll", zap.Ints("values", g.dice.Values[:]))
	return g.dice
}

// Reset starts a new game in place with a fresh ID.
func (g *Game) Reset() {
	prev := g.id
	g.id = uuid.NewString()
	g.logger = g.base.With(zap.String("game_id", g.id))
	g.board = NewBoard()
	g.side = White
	g.phase = Selecting
	g.selection = nil
	g.dice = DiceRoll{}
	g.turn = 0
	g.logger.Info("minichess_game_reset", zap.String("previous_game_id", prev))
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:     g.id,
		Board:      *g.board,
		SideToMove: g.side,
		Phase:      g.phase,
		Selection:  g.selection.clone(),
		Dice:       g.dice,
		Turn:       g.turn,
		Checkmate:  g.IsCheckmate(),
	}
}
