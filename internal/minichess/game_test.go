package minichess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scriptedRoller struct {
	rolls []DiceRoll
	next  int
}

func (r *scriptedRoller) Roll() DiceRoll {
	d := r.rolls[r.next%len(r.rolls)]
	r.next++
	return d
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRoller(&scriptedRoller{rolls: []DiceRoll{{Values: [2]int{1, 3}}}})}, opts...)
	g := NewGame(opts...)
	if g.ID() == "" {
		t.Fatalf("expected non-empty game id")
	}
	return g
}

func click(t *testing.T, g *Game, row, col int, want Outcome) {
	t.Helper()
	if got := g.CellClicked(Cell{Row: row, Col: col}); got != want {
		t.Fatalf("click (%d,%d) = %v, want %v", row, col, got, want)
	}
}

func TestInitialTurnState(t *testing.T) {
	g := newTestGame(t)
	if g.SideToMove() != White || g.Phase() != Selecting {
		t.Fatalf("initial state = %v/%v, want white/selecting", g.SideToMove(), g.Phase())
	}
	if g.Selection() != nil {
		t.Fatalf("expected no selection at start")
	}
	if g.IsCheckmate() {
		t.Fatalf("checkmate must always be false")
	}
}

func TestSelectPawnFromInitialBoard(t *testing.T) {
	g := newTestGame(t)
	click(t, g, 1, 0, Selected)

	want := &Selection{From: Cell{1, 0}, Moves: []Cell{{2, 0}}}
	if diff := cmp.Diff(want, g.Selection()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if g.Phase() != Moving {
		t.Fatalf("phase = %v, want moving", g.Phase())
	}
}

func TestCommitPawnPush(t *testing.T) {
	g := newTestGame(t)
	click(t, g, 1, 0, Selected)
	click(t, g, 2, 0, Moved)

	b := g.Board()
	if p, _ := b.PieceAt(Cell{1, 0}); !p.IsEmpty() {
		t.Fatalf("(1,0) = %v, want empty", p)
	}
	if p, _ := b.PieceAt(Cell{2, 0}); p != NewPiece(Pawn, White) {
		t.Fatalf("(2,0) = %v, want white pawn", p)
	}
	if g.SideToMove() != Black || g.Phase() != Selecting {
		t.Fatalf("after move = %v/%v, want black/selecting", g.SideToMove(), g.Phase())
	}
	if g.Selection() != nil {
		t.Fatalf("selection should be cleared after commit")
	}
	if g.Turn() != 1 {
		t.Fatalf("turn = %d, want 1", g.Turn())
	}
}

func TestIgnoredClicksLeaveStateUnchanged(t *testing.T) {
	cases := []struct {
		name  string
		setup func(g *Game)
		cell  Cell
	}{
		{"opponent piece while selecting", func(*Game) {}, Cell{3, 1}},
		{"opponent back rank while selecting", func(*Game) {}, Cell{4, 0}},
		{"empty cell while selecting", func(*Game) {}, Cell{2, 1}},
		{"off board while selecting", func(*Game) {}, Cell{5, 0}},
		{"own square while moving", func(g *Game) { g.CellClicked(Cell{1, 0}) }, Cell{1, 0}},
		{"other own piece while moving", func(g *Game) { g.CellClicked(Cell{1, 0}) }, Cell{1, 1}},
		{"non-destination while moving", func(g *Game) { g.CellClicked(Cell{1, 0}) }, Cell{2, 1}},
		{"off board while moving", func(g *Game) { g.CellClicked(Cell{1, 0}) }, Cell{-1, 2}},
		{"any cell with zero-move selection", func(g *Game) { g.CellClicked(Cell{0, 0}) }, Cell{2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			tc.setup(g)
			before := g.Snapshot()
			if got := g.CellClicked(tc.cell); got != Ignored {
				t.Fatalf("click %s = %v, want ignored", tc.cell, got)
			}
			if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
				t.Fatalf("ignored click changed state (-before +after):\n%s", diff)
			}
		})
	}
}

func TestPromotionByCapture(t *testing.T) {
	g := newTestGame(t, WithBoard(mustBoard(t, "K../.../.../P../kn.")))
	click(t, g, 3, 0, Selected)
	if diff := cmp.Diff([]Cell{{4, 1}}, g.Selection().Moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	click(t, g, 4, 1, Moved)

	b := g.Board()
	if p, _ := b.PieceAt(Cell{4, 1}); p != NewPiece(Bishop, White) {
		t.Fatalf("(4,1) = %v, want white bishop", p)
	}
	if n := b.Count(Knight, Black); n != 0 {
		t.Fatalf("black knights = %d, want 0 after capture", n)
	}
	if n := b.Count(Pawn, White); n != 0 {
		t.Fatalf("white pawns = %d, want 0 after promotion", n)
	}
}

func TestTurnAlternation(t *testing.T) {
	g := newTestGame(t)
	script := []struct {
		from, to Cell
		side     Color
	}{
		{Cell{1, 0}, Cell{2, 0}, White},
		{Cell{3, 2}, Cell{2, 2}, Black},
		{Cell{0, 1}, Cell{2, 2}, White}, // knight takes pawn
		{Cell{3, 1}, Cell{2, 0}, Black}, // pawn takes pawn
	}
	for i, step := range script {
		if g.SideToMove() != step.side {
			t.Fatalf("step %d: side = %v, want %v", i, g.SideToMove(), step.side)
		}
		g.CellClicked(Cell{Row: 4, Col: 4}) // noise
		g.CellClicked(Cell{Row: 2, Col: 1}) // empty
		if g.SideToMove() != step.side {
			t.Fatalf("step %d: ignored clicks flipped side", i)
		}
		click(t, g, step.from.Row, step.from.Col, Selected)
		click(t, g, step.from.Row, step.from.Col, Ignored)
		click(t, g, step.to.Row, step.to.Col, Moved)
		if g.SideToMove() != step.side.Opposite() {
			t.Fatalf("step %d: side after move = %v", i, g.SideToMove())
		}
		if g.Turn() != i+1 {
			t.Fatalf("step %d: turn = %d", i, g.Turn())
		}
	}
	if got, want := g.Board().String(), "K.B/.PP/p.N/p../knb"; got != want {
		t.Fatalf("board = %q, want %q", got, want)
	}
}

func TestCancelSelection(t *testing.T) {
	g := newTestGame(t)
	if g.Cancel() {
		t.Fatalf("cancel without selection should be a no-op")
	}
	click(t, g, 0, 0, Selected) // king has no moves
	if !g.Cancel() {
		t.Fatalf("cancel should drop the active selection")
	}
	if g.Phase() != Selecting || g.Selection() != nil || g.SideToMove() != White {
		t.Fatalf("after cancel = %v/%v/%v", g.Phase(), g.Selection(), g.SideToMove())
	}
	click(t, g, 1, 1, Selected)
	click(t, g, 2, 1, Moved)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t)
	click(t, g, 1, 2, Selected)
	snap := g.Snapshot()
	snap.Selection.Moves[0] = Cell{4, 4}
	if err := snap.Board.ApplyMove(Cell{1, 2}, Cell{2, 2}); err != nil {
		t.Fatalf("ApplyMove on snapshot: %v", err)
	}
	if got := g.Selection().Moves[0]; got != (Cell{2, 2}) {
		t.Fatalf("selection leaked from snapshot: %v", got)
	}
	if got := g.Board().String(); got != InitialLayout {
		t.Fatalf("board leaked from snapshot: %q", got)
	}
}

func TestRollStoresDiceWithoutTouchingTurn(t *testing.T) {
	g := newTestGame(t)
	click(t, g, 1, 0, Selected)
	before := g.Snapshot()

	d := g.Roll()
	if d.Values != [2]int{1, 3} {
		t.Fatalf("roll = %v, want [1 3]", d.Values)
	}
	after := g.Snapshot()
	if after.Dice != d {
		t.Fatalf("snapshot dice = %v, want %v", after.Dice, d)
	}
	after.Dice = before.Dice
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("roll changed turn state (-before +after):\n%s", diff)
	}
	click(t, g, 2, 0, Moved)
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	oldID := g.ID()
	click(t, g, 1, 0, Selected)
	click(t, g, 2, 0, Moved)
	g.Roll()
	click(t, g, 3, 0, Selected)

	g.Reset()
	if g.ID() == oldID {
		t.Fatalf("reset should assign a new game id")
	}
	want := Snapshot{GameID: g.ID(), Board: *NewBoard(), SideToMove: White, Phase: Selecting}
	if diff := cmp.Diff(want, g.Snapshot()); diff != "" {
		t.Fatalf("reset state mismatch (-want +got):\n%s", diff)
	}
}

func TestWithSideToMove(t *testing.T) {
	g := newTestGame(t, WithSideToMove(Black))
	click(t, g, 1, 0, Ignored)
	click(t, g, 3, 0, Selected)
	click(t, g, 2, 0, Moved)
	if g.SideToMove() != White {
		t.Fatalf("side = %v, want white", g.SideToMove())
	}
}
