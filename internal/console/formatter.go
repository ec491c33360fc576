package console

import (
	"fmt"
	"strings"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/internal/msgcat"
	"github.com/park285/Cheese-MiniChess/internal/render"
)

// Formatter turns game state into console text through the message catalog.
type Formatter struct {
	cat    *msgcat.Catalog
	prefix string
}

func NewFormatter(cat *msgcat.Catalog, prefix string) *Formatter {
	return &Formatter{cat: cat, prefix: strings.TrimSpace(prefix)}
}

func (f *Formatter) Prefix() string { return f.prefix }

func (f *Formatter) text(key string, data map[string]any, fallback string) string {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Prefix"]; !ok {
		data["Prefix"] = f.prefix
	}
	return f.cat.Text(key, data, fallback)
}

// Board draws the grid with row and column indices. The selected origin is
// bracketed, empty destinations show "*" and capturable pieces are starred.
func (f *Formatter) Board(snap minichess.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < minichess.Cols; col++ {
		fmt.Fprintf(&sb, " %d ", col)
	}
	sb.WriteString("\n")

	for row := 0; row < minichess.Rows; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < minichess.Cols; col++ {
			c := minichess.Cell{Row: row, Col: col}
			p, _ := snap.Board.PieceAt(c)
			sb.WriteString(cellToken(p, c, snap.Selection))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func cellToken(p minichess.Piece, c minichess.Cell, sel *minichess.Selection) string {
	sym := string(p.Symbol())
	if sel == nil {
		return " " + sym + " "
	}
	if sel.From == c {
		return "[" + sym + "]"
	}
	for _, m := range sel.Moves {
		if m != c {
			continue
		}
		if p.IsEmpty() {
			return " * "
		}
		return "*" + sym + "*"
	}
	return " " + sym + " "
}

func (f *Formatter) Status(snap minichess.Snapshot) string {
	return f.text("console.status", map[string]any{
		"Turn":  snap.Turn,
		"Side":  sideName(snap.SideToMove),
		"Phase": snap.Phase.String(),
	}, fmt.Sprintf("Turn %d | %s to move | %s", snap.Turn, sideName(snap.SideToMove), snap.Phase))
}

func (f *Formatter) Prompt(snap minichess.Snapshot) string {
	return f.text("console.prompt", map[string]any{
		"Side":  sideName(snap.SideToMove),
		"Phase": snap.Phase.String(),
	}, "> ")
}

func (f *Formatter) Welcome() string {
	return f.text("console.welcome", nil, "Cheese MiniChess")
}

func (f *Formatter) Help() string {
	return f.text("console.help", nil, "click <row> <col> | tap <x> <y> | cancel | roll | board | state | new | quit")
}

func (f *Formatter) Selected(p minichess.Piece, at minichess.Cell, moves int) string {
	msg := f.text("console.selected", map[string]any{
		"Piece": p.String(),
		"Cell":  at.String(),
		"Count": moves,
	}, fmt.Sprintf("Selected %s on %s.", p, at))
	if moves == 0 {
		msg += "\n" + f.text("console.no_moves", nil, "That piece has no legal moves.")
	}
	return msg
}

// Moved describes a committed move. captured is the piece that stood on to, if any.
func (f *Formatter) Moved(p minichess.Piece, from, to minichess.Cell, captured minichess.Piece, next minichess.Color) string {
	capturedName := ""
	if !captured.IsEmpty() {
		capturedName = captured.String()
	}
	msg := f.text("console.moved", map[string]any{
		"Piece":    p.String(),
		"From":     from.String(),
		"To":       to.String(),
		"Captured": capturedName,
		"Side":     sideName(next),
	}, fmt.Sprintf("%s %s -> %s", p, from, to))
	if p.Kind == minichess.Pawn && minichess.IsBackRank(to.Row) {
		msg += "\n" + f.text("console.promoted", map[string]any{"Cell": to.String()}, "Pawn promoted to bishop.")
	}
	return msg
}

func (f *Formatter) Ignored(c minichess.Cell) string {
	return f.text("console.ignored", map[string]any{"Cell": c.String()}, "Nothing to do.")
}

func (f *Formatter) Cancelled(ok bool) string {
	if ok {
		return f.text("console.cancelled", nil, "Selection cancelled.")
	}
	return f.text("console.nothing_to_cancel", nil, "No piece is selected.")
}

func (f *Formatter) Rolled(d minichess.DiceRoll) string {
	first, second := d.Face(0).String(), d.Face(1).String()
	return f.text("console.rolled", map[string]any{"First": first, "Second": second},
		fmt.Sprintf("Dice: %s / %s", first, second))
}

func (f *Formatter) NewGame(id string) string {
	return f.text("console.new_game", map[string]any{"GameID": id}, "New game "+id)
}

func (f *Formatter) SnapshotWritten(path string) string {
	return f.text("console.snapshot", map[string]any{"Path": path}, path)
}

func (f *Formatter) SnapshotFailed(err error) string {
	return f.text("console.snapshot_failed", map[string]any{"Error": err.Error()}, "snapshot failed: "+err.Error())
}

func (f *Formatter) OffBoard(x, y int) string {
	return f.text("console.off_board", map[string]any{"X": x, "Y": y}, "outside the board")
}

// CommandError renders a parse failure by its code.
func (f *Formatter) CommandError(code, command string) string {
	return f.text("console."+code, map[string]any{"Command": command}, "?")
}

func (f *Formatter) Bye() string {
	return f.text("console.bye", nil, "Bye.")
}

// RenderOptions builds the side-panel text for the board image.
func (f *Formatter) RenderOptions(snap minichess.Snapshot) render.RenderOptions {
	return render.RenderOptions{
		HUD: f.text("hud.turn", map[string]any{
			"Side":  sideName(snap.SideToMove),
			"Phase": snap.Phase.String(),
			"Turn":  snap.Turn,
		}, sideName(snap.SideToMove)+" to move"),
		RollLabel: f.text("hud.dice", nil, "Dice"),
	}
}

func sideName(c minichess.Color) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
