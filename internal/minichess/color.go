package minichess

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// SameColor reports whether a and b are the same side.
func SameColor(a, b Color) bool { return a == b }
