package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/platform"
)

func TestWireframe_CanvasCoversFrames(t *testing.T) {
	nodes := []ax.Node{
		{ID: "1", Role: ax.RoleButton, Title: "OK", Frame: platform.Rect{X: 100, Y: 100, W: 200, H: 40}},
		{ID: "2", Role: ax.RoleTextField, Title: "Email", Frame: platform.Rect{X: 100, Y: 200, W: 400, H: 30}},
	}
	img := Wireframe(nodes)

	// Union of frames is 400x130; canvas adds padding but is floored at
	// the minimum size.
	b := img.Bounds()
	if b.Dx() < 400+2*padding {
		t.Errorf("canvas width = %d, want at least %d", b.Dx(), 400+2*padding)
	}
	if b.Dy() < minCanvasSize {
		t.Errorf("canvas height = %d, want at least %d", b.Dy(), minCanvasSize)
	}
}

func TestWireframe_DrawsBoxOutline(t *testing.T) {
	nodes := []ax.Node{
		{ID: "1", Role: ax.RoleButton, Title: "OK", Frame: platform.Rect{X: 0, Y: 0, W: 100, H: 50}},
	}
	img := Wireframe(nodes)

	want := roleColors[ax.RoleButton]
	// Top-left corner of the frame lands at (padding, padding).
	if got := img.RGBAAt(padding, padding); got != want {
		t.Errorf("corner pixel = %v, want %v", got, want)
	}
	// A pixel strictly inside the box keeps the background.
	if got := img.RGBAAt(padding+50, padding+25); got == want {
		t.Error("box interior should not be filled")
	}
}

func TestWireframe_EmptySnapshot(t *testing.T) {
	img := Wireframe(nil)
	b := img.Bounds()
	if b.Dx() != minCanvasSize || b.Dy() != minCanvasSize {
		t.Errorf("empty canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), minCanvasSize, minCanvasSize)
	}
	if got := img.RGBAAt(10, 10); got != background {
		t.Errorf("background pixel = %v", got)
	}
}

func TestWireframe_FramelessNodesStillDrawn(t *testing.T) {
	nodes := []ax.Node{
		{ID: "1", Role: ax.RoleMenuItem, Title: "Save"},
	}
	img := Wireframe(nodes)

	// The label is drawn down the left edge; at least one pixel near it
	// must differ from the background.
	found := false
	for y := 0; y < 40 && !found; y++ {
		for x := 0; x < 120 && !found; x++ {
			if img.RGBAAt(x, y) != background {
				found = true
			}
		}
	}
	if !found {
		t.Error("frameless node left no visible mark")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	nodes := []ax.Node{
		{ID: "1", Role: ax.RoleCheckbox, Title: "Remember me", Frame: platform.Rect{X: 10, Y: 10, W: 120, H: 20}},
	}
	if err := WritePNG(&buf, nodes); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Empty() {
		t.Error("decoded image is empty")
	}
}

func TestLabelFor(t *testing.T) {
	if got := labelFor(ax.Node{Role: ax.RoleButton, Title: "OK"}); got != "OK" {
		t.Errorf("labelFor = %q", got)
	}
	if got := labelFor(ax.Node{Role: ax.RoleButton}); got != "<button>" {
		t.Errorf("labelFor = %q", got)
	}
}
