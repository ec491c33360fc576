package render

import (
	"image"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
)

// DefaultCellSize is the pixel edge of one board cell.
const DefaultCellSize = 100

// panelCells is the width of the side panel, in cells.
const panelCells = 2

// Geometry maps between board cells and image pixels. The board sits at the
// image origin with row 0 on top; the side panel is to its right.
type Geometry struct {
	CellSize int
}

// NewGeometry returns a Geometry, falling back to DefaultCellSize for non-positive sizes.
func NewGeometry(cellSize int) Geometry {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Geometry{CellSize: cellSize}
}

// scale converts a length given for the 100px reference cell.
func (g Geometry) scale(v int) int {
	return v * g.CellSize / DefaultCellSize
}

// Size is the full image size.
func (g Geometry) Size() image.Point {
	return image.Pt((minichess.Cols+panelCells)*g.CellSize, minichess.Rows*g.CellSize)
}

// BoardRect is the pixel area covered by cells.
func (g Geometry) BoardRect() image.Rectangle {
	return image.Rect(0, 0, minichess.Cols*g.CellSize, minichess.Rows*g.CellSize)
}

// PanelRect is the side panel holding the HUD, dice and roll button.
func (g Geometry) PanelRect() image.Rectangle {
	b := g.BoardRect()
	return image.Rect(b.Max.X, 0, b.Max.X+panelCells*g.CellSize, b.Max.Y)
}

// CellRect is the pixel area of c.
func (g Geometry) CellRect(c minichess.Cell) image.Rectangle {
	x := c.Col * g.CellSize
	y := c.Row * g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// CellCenter is the middle pixel of c.
func (g Geometry) CellCenter(c minichess.Cell) image.Point {
	r := g.CellRect(c)
	return image.Pt(r.Min.X+g.CellSize/2, r.Min.Y+g.CellSize/2)
}

// CellAt maps a pixel to the cell under it. Points left of or above the
// board, and points in the side panel, report false.
func (g Geometry) CellAt(p image.Point) (minichess.Cell, bool) {
	if !p.In(g.BoardRect()) {
		return minichess.Cell{}, false
	}
	return minichess.Cell{Row: p.Y / g.CellSize, Col: p.X / g.CellSize}, true
}

// DieRect is the slot for die i in the side panel.
func (g Geometry) DieRect(i int) image.Rectangle {
	x := g.scale(360)
	y := g.scale(250) + i*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// RollButton is the "Dice" button under the die slots.
func (g Geometry) RollButton() image.Rectangle {
	x, y := g.scale(375), g.scale(450)
	return image.Rect(x, y, x+g.scale(53), y+g.scale(25))
}

// RollButtonAt reports whether p hits the roll button.
func (g Geometry) RollButtonAt(p image.Point) bool {
	return p.In(g.RollButton())
}

// HUDRect is the text area at the top of the side panel.
func (g Geometry) HUDRect() image.Rectangle {
	p := g.PanelRect()
	pad := g.scale(12)
	return image.Rect(p.Min.X+pad, pad, p.Max.X-pad, g.scale(230))
}
