package minichess

import (
	"fmt"
	"unicode"
)

// Kind is the closed set of piece types, including the empty slot.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	King
	Knight
	Bishop
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case King:
		return "king"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	default:
		return "empty"
	}
}

// letter is the upper-case symbol of a kind.
func (k Kind) letter() rune {
	switch k {
	case Pawn:
		return 'P'
	case King:
		return 'K'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	default:
		return '.'
	}
}

// Piece is an immutable board slot value. The zero value is the empty slot.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the empty slot.
var NoPiece = Piece{}

// NewPiece returns a piece of the given kind and color. Empty always yields NoPiece.
func NewPiece(kind Kind, color Color) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece{Kind: kind, Color: color}
}

// IsEmpty reports whether the slot holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == Empty }

// Direction is the row step of a pawn: +1 for White, -1 for Black.
func (p Piece) Direction() int {
	if p.Color == White {
		return 1
	}
	return -1
}

// Symbol returns the layout letter: upper case for White, lower case for Black, '.' when empty.
func (p Piece) Symbol() rune {
	r := p.Kind.letter()
	if p.IsEmpty() || p.Color == White {
		return r
	}
	return unicode.ToLower(r)
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// PieceFromSymbol parses a layout letter produced by Symbol.
func PieceFromSymbol(r rune) (Piece, error) {
	if r == '.' {
		return NoPiece, nil
	}
	color := White
	if unicode.IsLower(r) {
		color = Black
	}
	switch unicode.ToUpper(r) {
	case 'P':
		return NewPiece(Pawn, color), nil
	case 'K':
		return NewPiece(King, color), nil
	case 'N':
		return NewPiece(Knight, color), nil
	case 'B':
		return NewPiece(Bishop, color), nil
	}
	return NoPiece, fmt.Errorf("%w: unknown piece symbol %q", ErrInvalidLayout, r)
}

// MovesFrom returns the legal destinations of p standing on from. Empty has no moves.
func (p Piece) MovesFrom(b *Board, from Cell) []Cell {
	if b == nil || !IsValidCell(from) {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return pawnMoves(b, p, from)
	case King:
		return stepMoves(b, p, from, kingSteps[:])
	case Knight:
		return stepMoves(b, p, from, knightJumps[:])
	case Bishop:
		return rayMoves(b, p, from, bishopRays[:])
	default:
		return nil
	}
}
