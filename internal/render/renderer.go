// Package render draws a game snapshot as a PNG and maps pixels back to cells.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"strings"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// RenderOptions carries the caller-formatted text drawn in the side panel.
type RenderOptions struct {
	// HUD lines, separated by newlines. Empty uses "<side> to move".
	HUD       string
	RollLabel string
}

// Renderer draws snapshots. It holds no per-game state and is safe for concurrent use.
type Renderer struct {
	geom   Geometry
	logger *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a renderer for the given cell size.
func NewRenderer(cellSize int, opts ...Option) *Renderer {
	r := &Renderer{geom: NewGeometry(cellSize), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Geometry returns the pixel layout used by the renderer.
func (r *Renderer) Geometry() Geometry { return r.geom }

var (
	lightCell        = color.RGBA{200, 200, 200, 255}
	darkCell         = color.RGBA{100, 100, 100, 255}
	panelBackground  = color.RGBA{255, 255, 255, 255}
	moveDotColor     = color.RGBA{12, 143, 44, 255}
	originFill       = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	dieSlotColor     = color.NRGBA{R: 232, G: 232, B: 236, A: 255}
	rollButtonColor  = color.RGBA{123, 123, 123, 255}
	rollButtonText   = color.RGBA{255, 255, 255, 255}
	hudTextColor     = color.RGBA{28, 31, 46, 255}
	checkmateBanner  = color.NRGBA{R: 170, G: 30, B: 30, A: 220}
	checkmateBanText = color.RGBA{255, 255, 255, 255}
)

// Render draws snap into a new RGBA image.
func (r *Renderer) Render(ctx context.Context, snap minichess.Snapshot, opts RenderOptions) (*image.RGBA, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(image.Rectangle{Max: r.geom.Size()})
	fillRect(img, img.Bounds(), panelBackground, imagedraw.Src)

	r.drawCells(img)
	if snap.Selection != nil {
		fillRect(img, r.geom.CellRect(snap.Selection.From), originFill, imagedraw.Over)
	}
	if err := r.drawPieces(img, &snap.Board); err != nil {
		return nil, err
	}
	if snap.Selection != nil {
		radius := r.geom.scale(15)
		for _, c := range snap.Selection.Moves {
			drawDisc(img, r.geom.CellCenter(c), radius, moveDotColor)
		}
	}
	if err := r.drawDicePanel(img, snap.Dice, opts.RollLabel); err != nil {
		return nil, err
	}
	r.drawHUD(img, snap, opts.HUD)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return img, nil
}

// RenderPNG draws snap and encodes it as PNG.
func (r *Renderer) RenderPNG(ctx context.Context, snap minichess.Snapshot, opts RenderOptions) ([]byte, error) {
	img, err := r.Render(ctx, snap, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	r.logger.Debug("minichess_render_png",
		zap.String("game_id", snap.GameID),
		zap.Int("turn", snap.Turn),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func (r *Renderer) drawCells(img *image.RGBA) {
	for row := 0; row < minichess.Rows; row++ {
		for col := 0; col < minichess.Cols; col++ {
			clr := darkCell
			if (row+col)%2 == 0 {
				clr = lightCell
			}
			fillRect(img, r.geom.CellRect(minichess.Cell{Row: row, Col: col}), clr, imagedraw.Src)
		}
	}
}

func (r *Renderer) drawPieces(img *image.RGBA, b *minichess.Board) error {
	for row := 0; row < minichess.Rows; row++ {
		for col := 0; col < minichess.Cols; col++ {
			c := minichess.Cell{Row: row, Col: col}
			p, err := b.PieceAt(c)
			if err != nil {
				return err
			}
			if p.IsEmpty() {
				continue
			}
			glyph, err := pieceGlyph(p, r.geom.CellSize)
			if err != nil {
				return err
			}
			imagedraw.Draw(img, r.geom.CellRect(c), glyph, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

func (r *Renderer) drawDicePanel(img *image.RGBA, dice minichess.DiceRoll, label string) error {
	radius := r.geom.scale(10)
	for i := 0; i < minichess.DiceCount; i++ {
		slot := r.geom.DieRect(i)
		inset := slot.Inset(r.geom.scale(4))
		drawRoundedPanel(img, inset, radius, dieSlotColor)
		face := dice.Face(i)
		if face.IsEmpty() {
			continue
		}
		glyph, err := pieceGlyph(face, slot.Dx())
		if err != nil {
			return err
		}
		imagedraw.Draw(img, slot, glyph, image.Point{}, imagedraw.Over)
	}

	button := r.geom.RollButton()
	fillRect(img, button, rollButtonColor, imagedraw.Src)
	if strings.TrimSpace(label) == "" {
		label = "Dice"
	}
	drawer := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	drawCenteredString(drawer, button, truncateWithEllipsis(drawer.Face, label, button.Dx()), rollButtonText)
	return nil
}

func (r *Renderer) drawHUD(img *image.RGBA, snap minichess.Snapshot, text string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: img, Face: face}
	if strings.TrimSpace(text) == "" {
		text = snap.SideToMove.String() + " to move"
	}
	area := r.geom.HUDRect()
	lineHeight := face.Metrics().Height.Ceil() + 4
	y := area.Min.Y
	for _, line := range strings.Split(text, "\n") {
		if y+lineHeight > area.Max.Y {
			break
		}
		line = truncateWithEllipsis(face, line, area.Dx())
		drawCenteredString(drawer, image.Rect(area.Min.X, y, area.Max.X, y+lineHeight), line, hudTextColor)
		y += lineHeight
	}

	if snap.Checkmate {
		banner := r.geom.BoardRect()
		mid := banner.Dy() / 2
		banner = image.Rect(banner.Min.X, mid-r.geom.scale(30), banner.Max.X, mid+r.geom.scale(30))
		fillRect(img, banner, checkmateBanner, imagedraw.Over)
		drawCenteredString(drawer, banner, "Checkmate", checkmateBanText)
	}
}
