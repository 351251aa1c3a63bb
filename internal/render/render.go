// Package render draws a captured snapshot as a PNG wireframe: one
// outlined box per element, labeled with its title, so a human can see
// what the planner was shown without a real screenshot.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/deskpilot/deskpilot/internal/ax"
)

const (
	padding       = 20
	minCanvasSize = 320
)

var (
	background = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	textColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outline    = color.RGBA{R: 0, G: 0, B: 0, A: 200}

	// One box color per role so the wireframe reads at a glance.
	roleColors = map[string]color.RGBA{
		ax.RoleButton:     {R: 255, G: 99, B: 71, A: 255},
		ax.RoleStaticText: {R: 160, G: 160, B: 160, A: 255},
		ax.RoleTextField:  {R: 80, G: 180, B: 255, A: 255},
		ax.RoleCheckbox:   {R: 120, G: 220, B: 120, A: 255},
		ax.RoleMenuItem:   {R: 230, G: 200, B: 80, A: 255},
		ax.RoleTab:        {R: 200, G: 120, B: 255, A: 255},
	}
)

// Wireframe renders the nodes onto a canvas sized to the union of their
// frames. Elements with a zero frame are listed down the left edge so
// they still appear.
func Wireframe(nodes []ax.Node) *image.RGBA {
	minX, minY, maxX, maxY := extent(nodes)

	w := int(maxX-minX) + 2*padding
	h := int(maxY-minY) + 2*padding
	if w < minCanvasSize {
		w = minCanvasSize
	}
	if h < minCanvasSize {
		h = minCanvasSize
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	framelessY := padding
	for _, n := range nodes {
		c, ok := roleColors[n.Role]
		if !ok {
			c = textColor
		}
		if n.Frame.IsZero() {
			drawTextWithOutline(img, labelFor(n), padding+60, framelessY, c, outline)
			framelessY += 16
			continue
		}
		x := int(n.Frame.X-minX) + padding
		y := int(n.Frame.Y-minY) + padding
		drawRectangle(img, x, y, x+int(n.Frame.W), y+int(n.Frame.H), c)
		drawTextWithOutline(img, labelFor(n), x+int(n.Frame.W)/2, y+int(n.Frame.H)/2, textColor, outline)
	}
	return img
}

// WritePNG renders the nodes and encodes the result.
func WritePNG(w io.Writer, nodes []ax.Node) error {
	if err := png.Encode(w, Wireframe(nodes)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func labelFor(n ax.Node) string {
	if n.Title != "" {
		return n.Title
	}
	return "<" + n.Role + ">"
}

// extent returns the bounding box of all non-zero frames, or zeros when
// every node is frameless.
func extent(nodes []ax.Node) (minX, minY, maxX, maxY float64) {
	first := true
	for _, n := range nodes {
		if n.Frame.IsZero() {
			continue
		}
		if first {
			minX, minY = n.Frame.X, n.Frame.Y
			maxX, maxY = n.Frame.X+n.Frame.W, n.Frame.Y+n.Frame.H
			first = false
			continue
		}
		if n.Frame.X < minX {
			minX = n.Frame.X
		}
		if n.Frame.Y < minY {
			minY = n.Frame.Y
		}
		if n.Frame.X+n.Frame.W > maxX {
			maxX = n.Frame.X + n.Frame.W
		}
		if n.Frame.Y+n.Frame.H > maxY {
			maxY = n.Frame.Y + n.Frame.H
		}
	}
	return minX, minY, maxX, maxY
}

// drawRectangle draws a rectangle outline, clamped to the image bounds.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws text centered at (x, y) with a 1px outline
// for visibility against any background.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: 7px advance, 13px line height.
	textWidth := len(text) * 7
	textHeight := 13

	offsetX := x - textWidth/2
	offsetY := y + textHeight/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6((offsetX + dx) * 64),
					Y: fixed.Int26_6((offsetY + dy) * 64),
				},
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(offsetX * 64),
			Y: fixed.Int26_6(offsetY * 64),
		},
	}
	d.DrawString(text)
}
