package render

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func fillRect(img *image.RGBA, rect image.Rectangle, clr color.Color, op imagedraw.Op) {
	imagedraw.Draw(img, rect, image.NewUniform(clr), image.Point{}, op)
}

func drawRoundedPanel(img *image.RGBA, rect image.Rectangle, radius int, clr color.Color) {
	if img == nil || rect.Empty() {
		return
	}
	radius = min(max(radius, 0), rect.Dx()/2, rect.Dy()/2)
	if radius == 0 {
		fillRect(img, rect, clr, imagedraw.Over)
		return
	}
	// center column, two side strips, then the corner quarters
	fillRect(img, image.Rect(rect.Min.X+radius, rect.Min.Y, rect.Max.X-radius, rect.Max.Y), clr, imagedraw.Over)
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y+radius, rect.Min.X+radius, rect.Max.Y-radius), clr, imagedraw.Over)
	fillRect(img, image.Rect(rect.Max.X-radius, rect.Min.Y+radius, rect.Max.X, rect.Max.Y-radius), clr, imagedraw.Over)
	for _, c := range []image.Point{
		{rect.Min.X + radius, rect.Min.Y + radius},
		{rect.Max.X - radius - 1, rect.Min.Y + radius},
		{rect.Min.X + radius, rect.Max.Y - radius - 1},
		{rect.Max.X - radius - 1, rect.Max.Y - radius - 1},
	} {
		drawQuarter(img, c, radius, rect, clr)
	}
}

// drawQuarter paints the disc around c clipped to the corner square of rect
// it belongs to, so no pixel is blended twice.
func drawQuarter(img *image.RGBA, c image.Point, radius int, rect image.Rectangle, clr color.Color) {
	var corner image.Rectangle
	switch {
	case c.X < rect.Min.X+rect.Dx()/2 && c.Y < rect.Min.Y+rect.Dy()/2:
		corner = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+radius, rect.Min.Y+radius)
	case c.Y < rect.Min.Y+rect.Dy()/2:
		corner = image.Rect(rect.Max.X-radius, rect.Min.Y, rect.Max.X, rect.Min.Y+radius)
	case c.X < rect.Min.X+rect.Dx()/2:
		corner = image.Rect(rect.Min.X, rect.Max.Y-radius, rect.Min.X+radius, rect.Max.Y)
	default:
		corner = image.Rect(rect.Max.X-radius, rect.Max.Y-radius, rect.Max.X, rect.Max.Y)
	}
	r2 := radius * radius
	for y := corner.Min.Y; y < corner.Max.Y; y++ {
		for x := corner.Min.X; x < corner.Max.X; x++ {
			dx, dy := x-c.X, y-c.Y
			if dx*dx+dy*dy > r2 {
				continue
			}
			blendPixel(img, x, y, clr)
		}
	}
}

func drawDisc(img *image.RGBA, center image.Point, radius int, clr color.Color) {
	if radius <= 0 {
		blendPixel(img, center.X, center.Y, clr)
		return
	}
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y > r2 {
				continue
			}
			blendPixel(img, center.X+x, center.Y+y, clr)
		}
	}
}

// blendPixel composites clr over the pixel at (x, y) using source-over.
func blendPixel(img *image.RGBA, x, y int, clr color.Color) {
	if img == nil || !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	sr, sg, sb, sa := clr.RGBA()
	if sa == 0 {
		return
	}
	d := img.RGBAAt(x, y)
	// premultiplied: out = src + dst*(1-srcA)
	inv := 0xffff - sa
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((sr + uint32(d.R)*0x101*inv/0xffff) >> 8),
		G: uint8((sg + uint32(d.G)*0x101*inv/0xffff) >> 8),
		B: uint8((sb + uint32(d.B)*0x101*inv/0xffff) >> 8),
		A: uint8((sa + uint32(d.A)*0x101*inv/0xffff) >> 8),
	})
}

func truncateWithEllipsis(face font.Face, text string, maxWidth int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || maxWidth <= 0 || face == nil {
		return trimmed
	}
	if font.MeasureString(face, trimmed).Round() <= maxWidth {
		return trimmed
	}
	const ellipsis = "..."
	if font.MeasureString(face, ellipsis).Round() > maxWidth {
		return ""
	}
	runes := []rune(trimmed)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if font.MeasureString(face, candidate).Round() <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// drawCenteredString draws text centered in rect on the vertical metric box of the face.
func drawCenteredString(drawer *font.Drawer, rect image.Rectangle, text string, clr color.Color) {
	text = strings.TrimSpace(text)
	if drawer == nil || text == "" {
		return
	}
	metrics := drawer.Face.Metrics()
	width := drawer.MeasureString(text).Round()
	x := max(rect.Min.X+(rect.Dx()-width)/2, rect.Min.X)
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Src = image.NewUniform(clr)
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
