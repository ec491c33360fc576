package minichess

import "fmt"

// Board dimensions. Rows run from White's back rank (0) to Black's (Rows-1).
const (
	Rows = 5
	Cols = 3
)

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// offset returns the cell shifted by dr rows and dc columns. The result may be off the board.
func (c Cell) offset(dr, dc int) Cell { return Cell{Row: c.Row + dr, Col: c.Col + dc} }

// IsValidCell reports whether c lies on the board.
func IsValidCell(c Cell) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// IsBackRank reports whether row is either side's back rank.
func IsBackRank(row int) bool { return row == 0 || row == Rows-1 }

func containsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
