package minichess

import (
	"fmt"
	"strings"
)

// InitialLayout is the starting position, row 0 first.
const InitialLayout = "KNB/PPP/.../ppp/knb"

// Board is the authoritative position: exactly one Piece value per cell.
// A Board is a plain value; copying it copies the whole grid.
type Board struct {
	cells [Rows][Cols]Piece
}

// NewBoard returns the starting position.
func NewBoard() *Board {
	b, err := ParseBoard(InitialLayout)
	if err != nil {
		panic(err) // InitialLayout is a constant
	}
	return b
}

// ParseBoard parses a layout of Rows rank strings of Cols symbols joined by '/', row 0 first.
func ParseBoard(layout string) (*Board, error) {
	ranks := strings.Split(strings.TrimSpace(layout), "/")
	if len(ranks) != Rows {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidLayout, Rows, len(ranks))
	}
	b := &Board{}
	for row, rank := range ranks {
		symbols := []rune(strings.TrimSpace(rank))
		if len(symbols) != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d cells", ErrInvalidLayout, row, len(symbols))
		}
		for col, r := range symbols {
			p, err := PieceFromSymbol(r)
			if err != nil {
				return nil, err
			}
			b.cells[row][col] = p
		}
	}
	return b, nil
}

// String renders the board in ParseBoard layout.
func (b *Board) String() string { return strings.Join(b.Ranks(), "/") }

// Ranks returns one symbol string per row, row 0 first.
func (b *Board) Ranks() []string {
	out := make([]string, Rows)
	for row := 0; row < Rows; row++ {
		var sb strings.Builder
		for col := 0; col < Cols; col++ {
			sb.WriteRune(b.cells[row][col].Symbol())
		}
		out[row] = sb.String()
	}
	return out
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// PieceAt returns the occupant of c.
func (b *Board) PieceAt(c Cell) (Piece, error) {
	if !IsValidCell(c) {
		return NoPiece, fmt.Errorf("piece at %s: %w", c, ErrOutOfBounds)
	}
	return b.at(c), nil
}

// at is the unchecked lookup; c must be valid.
func (b *Board) at(c Cell) Piece { return b.cells[c.Row][c.Col] }

func (b *Board) set(c Cell, p Piece) { b.cells[c.Row][c.Col] = p }

// ApplyMove moves the piece on from to to, overwriting any occupant, and promotes a
// pawn reaching a back rank to a bishop. Legality is not checked. The board is left
// untouched when a cell is off the board or from is empty.
func (b *Board) ApplyMove(from, to Cell) error {
	if !IsValidCell(from) || !IsValidCell(to) {
		return fmt.Errorf("move %s->%s: %w", from, to, ErrInvalidMoveRequest)
	}
	piece := b.at(from)
	if piece.IsEmpty() {
		return fmt.Errorf("move %s->%s: empty source: %w", from, to, ErrInvalidMoveRequest)
	}

	b.set(from, NoPiece)
	if piece.Kind == Pawn && IsBackRank(to.Row) {
		piece = NewPiece(Bishop, piece.Color)
	}
	b.set(to, piece)
	return nil
}

// Count returns the number of pieces of the given kind and color.
func (b *Board) Count(kind Kind, color Color) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			p := b.cells[row][col]
			if p.Kind == kind && !p.IsEmpty() && p.Color == color {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both boards hold the same pieces on every cell.
func (b Board) Equal(o Board) bool { return b.cells == o.cells }
