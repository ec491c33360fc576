package console

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/internal/msgcat"
	"github.com/park285/Cheese-MiniChess/internal/render"
	"github.com/park285/Cheese-MiniChess/pkg/minidto"
)

type fixedRoller struct{ roll minichess.DiceRoll }

func (r fixedRoller) Roll() minichess.DiceRoll { return r.roll }

func newTestConsole(t *testing.T, opts ...Option) (*Console, *minichess.Game, *bytes.Buffer) {
	t.Helper()
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	game := minichess.NewGame(minichess.WithRoller(fixedRoller{roll: minichess.DiceRoll{Values: [2]int{0, 3}}}))
	var out bytes.Buffer
	return New(game, cat, &out, opts...), game, &out
}

func run(t *testing.T, c *Console, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := c.Execute(context.Background(), line); err != nil {
			t.Fatalf("Execute(%q): %v", line, err)
		}
	}
}

func mustContain(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line   string
		prefix string
		want   command
		code   string
	}{
		{line: "click 1 0", want: command{kind: cmdClick, cell: minichess.Cell{Row: 1, Col: 0}}},
		{line: "/click 4 2", prefix: "/", want: command{kind: cmdClick, cell: minichess.Cell{Row: 4, Col: 2}}},
		{line: "click 4 2", prefix: "/", want: command{kind: cmdClick, cell: minichess.Cell{Row: 4, Col: 2}}},
		{line: "  2 1 ", want: command{kind: cmdClick, cell: minichess.Cell{Row: 2, Col: 1}}},
		{line: "/3 0", prefix: "/", want: command{kind: cmdClick, cell: minichess.Cell{Row: 3, Col: 0}}},
		{line: "click -1 7", want: command{kind: cmdClick, cell: minichess.Cell{Row: -1, Col: 7}}},
		{line: "TAP 40 120", want: command{kind: cmdTap, point: pt(40, 120)}},
		{line: "cancel", want: command{kind: cmdCancel}},
		{line: "roll", want: command{kind: cmdRoll}},
		{line: "state", want: command{kind: cmdState}},
		{line: "new", want: command{kind: cmdNew}},
		{line: "quit", want: command{kind: cmdQuit}},
		{line: "", want: command{kind: cmdNone}},
		{line: "click a b", code: codeUsageClick},
		{line: "click 1", code: codeUsageClick},
		{line: "tap 1", code: codeUsageTap},
		{line: "castle", code: codeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, err := parseCommand(tc.line, tc.prefix)
			if tc.code != "" {
				var ce minidto.CommandError
				if !errors.As(err, &ce) || ce.Code != tc.code {
					t.Fatalf("expected %s error, got %v", tc.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCommand: %v", err)
			}
			if got != tc.want {
				t.Fatalf("parseCommand(%q) = %+v want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestFormatterBoard(t *testing.T) {
	c, game, _ := newTestConsole(t)
	want := strings.Join([]string{
		"   0  1  2 ",
		"0  K  N  B ",
		"1  P  P  P ",
		"2  .  .  . ",
		"3  p  p  p ",
		"4  k  n  b ",
	}, "\n")
	if diff := cmp.Diff(want, c.formatter.Board(game.Snapshot())); diff != "" {
		t.Fatalf("initial board mismatch (-want +got):\n%s", diff)
	}

	game.CellClicked(minichess.Cell{Row: 1, Col: 1})
	want = strings.Join([]string{
		"   0  1  2 ",
		"0  K  N  B ",
		"1  P [P] P ",
		"2  .  *  . ",
		"3  p  p  p ",
		"4  k  n  b ",
	}, "\n")
	if diff := cmp.Diff(want, c.formatter.Board(game.Snapshot())); diff != "" {
		t.Fatalf("selected board mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatterMarksCaptures(t *testing.T) {
	b, err := minichess.ParseBoard("K../.../.p./P../k..")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	game := minichess.NewGame(minichess.WithBoard(b), minichess.WithSideToMove(minichess.Black))
	game.CellClicked(minichess.Cell{Row: 2, Col: 1})
	got := NewFormatter(cat, "").Board(game.Snapshot())
	// black pawn at (2,1): push to (1,1), no captures
	mustContain(t, got, "1  .  *  . ")
	mustContain(t, got, "2  . [p] . ")

	game.Cancel()
	game.CellClicked(minichess.Cell{Row: 4, Col: 0})
	got = NewFormatter(cat, "").Board(game.Snapshot())
	mustContain(t, got, "3 *P* *  . ")
}

func TestConsoleMoveFlow(t *testing.T) {
	c, game, out := newTestConsole(t)
	run(t, c, "1 0", "2 0")

	mustContain(t, out.String(), "Selected white pawn on (1,0): 1 legal move(s).")
	mustContain(t, out.String(), "white pawn (1,0) -> (2,0). Black to move.")
	mustContain(t, out.String(), "Turn 1 | Black to move | selecting")
	if game.SideToMove() != minichess.Black || game.Turn() != 1 {
		t.Fatalf("unexpected game state: side=%v turn=%d", game.SideToMove(), game.Turn())
	}
}

func TestConsoleIgnoredAndCancel(t *testing.T) {
	c, game, out := newTestConsole(t)
	run(t, c, "cancel", "2 1", "3 0", "0 0", "cancel")

	got := out.String()
	mustContain(t, got, "No piece is selected.")
	mustContain(t, got, "Nothing to do on (2,1).")
	mustContain(t, got, "Nothing to do on (3,0).")
	mustContain(t, got, "Selected white king on (0,0): 0 legal move(s).")
	mustContain(t, got, "That piece has no legal moves. Use cancel to pick another.")
	mustContain(t, got, "Selection cancelled.")
	if game.Phase() != minichess.Selecting {
		t.Fatalf("expected selecting after cancel, got %v", game.Phase())
	}
}

func TestConsoleAutoRollAndPromotion(t *testing.T) {
	b, err := minichess.ParseBoard("K../.../.../P../kn.")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	game := minichess.NewGame(
		minichess.WithBoard(b),
		minichess.WithRoller(fixedRoller{roll: minichess.DiceRoll{Values: [2]int{0, 3}}}),
	)
	var out bytes.Buffer
	c := New(game, cat, &out, WithAutoRoll(true))
	run(t, c, "3 0", "4 1")

	got := out.String()
	mustContain(t, got, "white pawn (3,0) -> (4,1), takes black knight. Black to move.")
	mustContain(t, got, "Pawn promoted to bishop on (4,1).")
	mustContain(t, got, "Dice: white king / black bishop")
	if p, _ := game.Board().PieceAt(minichess.Cell{Row: 4, Col: 1}); p != minichess.NewPiece(minichess.Bishop, minichess.White) {
		t.Fatalf("expected promoted bishop, got %v", p)
	}
}

func TestConsoleTapAndSnapshots(t *testing.T) {
	dir := t.TempDir()
	w, err := render.NewSnapshotWriter(dir, render.NewRenderer(100), nil)
	if err != nil {
		t.Fatalf("NewSnapshotWriter: %v", err)
	}
	c, game, out := newTestConsole(t, WithSnapshots(w), WithGeometry(render.NewGeometry(100)))
	run(t, c, "tap 50 150", "tap 350 10", "tap 400 460")

	got := out.String()
	mustContain(t, got, "Selected white pawn on (1,0)")
	mustContain(t, got, "(350, 10) is outside the board.")
	mustContain(t, got, "Dice: white king / black bishop")
	mustContain(t, got, "Board image written to")
	if game.Dice().Values != [2]int{0, 3} {
		t.Fatalf("tap on roll button should roll, got %v", game.Dice())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 snapshots (select, roll), got %d", len(entries))
	}
}

func TestConsoleStateAndReset(t *testing.T) {
	c, game, out := newTestConsole(t)
	first := game.ID()
	run(t, c, "1 2", "state")
	mustContain(t, out.String(), `"phase": "moving"`)
	mustContain(t, out.String(), `"from": {`)

	out.Reset()
	run(t, c, "new")
	if game.ID() == first {
		t.Fatalf("new should assign a fresh game id")
	}
	mustContain(t, out.String(), "New game "+game.ID()+". White to move.")
	if game.Phase() != minichess.Selecting || game.Selection() != nil {
		t.Fatalf("new should clear the selection")
	}
}

func TestConsoleRun(t *testing.T) {
	c, _, out := newTestConsole(t)
	err := c.Run(context.Background(), strings.NewReader("help\nbogus\nquit\n1 0\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	mustContain(t, got, "Cheese MiniChess")
	mustContain(t, got, "click <row> <col>")
	mustContain(t, got, `Unknown command "bogus". Try help.`)
	mustContain(t, got, "Bye.")
	if strings.Contains(got, "Selected") {
		t.Fatalf("commands after quit must not run:\n%s", got)
	}
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	c, _, _ := newTestConsole(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx, pr); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestToDTOState(t *testing.T) {
	game := minichess.NewGame(minichess.WithRoller(fixedRoller{roll: minichess.DiceRoll{Values: [2]int{2, 1}}}))
	game.Roll()
	game.CellClicked(minichess.Cell{Row: 0, Col: 1})

	want := minidto.SessionState{
		GameID:     game.ID(),
		SideToMove: "white",
		Phase:      "moving",
		Turn:       0,
		Board:      []string{"KNB", "PPP", "...", "ppp", "knb"},
		Selection: &minidto.Selection{
			From:  minidto.Cell{Row: 0, Col: 1},
			Moves: []minidto.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 2}},
		},
		Dice: minidto.Dice{Values: []int{2, 1}, Kinds: []string{"knight", "pawn"}},
	}
	if diff := cmp.Diff(want, ToDTOState(game.Snapshot())); diff != "" {
		t.Fatalf("dto mismatch (-want +got):\n%s", diff)
	}
}

func pt(x, y int) image.Point { return image.Pt(x, y) }
