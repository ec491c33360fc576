package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

type glyphKey struct {
	piece minichess.Piece
	size  int
}

var (
	glyphCache   = map[glyphKey]image.Image{}
	glyphCacheMu sync.RWMutex
)

// pieceGlyph rasterizes the SVG for p at size×size, cached per piece and size.
func pieceGlyph(p minichess.Piece, size int) (image.Image, error) {
	if p.IsEmpty() {
		return nil, fmt.Errorf("no glyph for empty cell")
	}
	key := glyphKey{piece: p, size: size}

	glyphCacheMu.RLock()
	if img, ok := glyphCache[key]; ok {
		glyphCacheMu.RUnlock()
		return img, nil
	}
	glyphCacheMu.RUnlock()

	name := glyphAssetName(p)
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	glyphCacheMu.Lock()
	glyphCache[key] = img
	glyphCacheMu.Unlock()
	return img, nil
}

func glyphAssetName(p minichess.Piece) string {
	prefix := "w"
	if p.Color == minichess.Black {
		prefix = "b"
	}
	var suffix string
	switch p.Kind {
	case minichess.King:
		suffix = "K"
	case minichess.Knight:
		suffix = "N"
	case minichess.Bishop:
		suffix = "B"
	default:
		suffix = "P"
	}
	return fmt.Sprintf("assets/pieces/%s%s.svg", prefix, suffix)
}
