package soft_test

import (
	"image"
	"image/color"
	"testing"

	"chromakey/internal/config"
	"chromakey/internal/graphics"
	"chromakey/internal/graphics/renderer"
	"chromakey/internal/graphics/soft"
)

const size = 8

var (
	keyWhite = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	red      = color.RGBA{R: 200, G: 20, B: 20, A: 255}
	purple   = color.RGBA{R: 128, G: 0, B: 128, A: 255}
)

// background gives every pixel a distinct colour.
func background() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 60, A: 255})
		}
	}
	return img
}

// foreground is keyed in the left half and solid red in the right half.
func foreground() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < size/2 {
				img.SetRGBA(x, y, keyWhite)
			} else {
				img.SetRGBA(x, y, red)
			}
		}
	}
	return img
}

func newScene(bg, fg *image.RGBA) (*soft.Device, *renderer.Compositor) {
	dev := soft.NewDevice(size, size)
	dev.Clear(purple)
	c := renderer.NewCompositor(dev.NewQuad(graphics.QuadVertices()), dev.Viewport,
		renderer.Layer{Name: "background", Program: dev.NewProgram(graphics.Blit{}), Texture: dev.NewTexture(bg)},
		renderer.Layer{Name: "foreground", Program: dev.NewProgram(graphics.ChromaKey{Key: config.MaskKey, Tolerance: config.MaskTolerance}), Texture: dev.NewTexture(fg)},
	)
	c.SetViewport(size, size)
	return dev, c
}

func TestCompositeMaskedPixelsShowBackground(t *testing.T) {
	bg := background()
	dev, c := newScene(bg, foreground())
	c.Render()

	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			if got, want := dev.Target.RGBAAt(x, y), bg.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want background %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeUnmaskedPixelsOverwrite(t *testing.T) {
	dev, c := newScene(background(), foreground())
	c.Render()

	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			if got := dev.Target.RGBAAt(x, y); got != red {
				t.Errorf("pixel (%d,%d) = %v, want foreground %v", x, y, got, red)
			}
		}
	}
}

func TestCompositeIgnoresBackgroundUnderOpaqueForeground(t *testing.T) {
	plain := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := range plain.Pix {
		plain.Pix[i] = 255
	}
	devA, a := newScene(background(), foreground())
	devB, b := newScene(plain, foreground())
	a.Render()
	b.Render()

	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			if devA.Target.RGBAAt(x, y) != devB.Target.RGBAAt(x, y) {
				t.Errorf("pixel (%d,%d) depends on the background", x, y)
			}
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	dev, c := newScene(background(), foreground())
	c.Render()
	first := append([]uint8(nil), dev.Target.Pix...)
	c.Render()

	for i := range first {
		if first[i] != dev.Target.Pix[i] {
			t.Fatalf("second frame differs at byte %d", i)
		}
	}
	if dev.Draws() != 4 {
		t.Errorf("draws = %d, want 4", dev.Draws())
	}
}

func TestImageIsNotFlipped(t *testing.T) {
	bg := background()
	dev, c := newScene(bg, foregroundKeyed())
	c.Render()

	// background pixels are all distinct, so any flip or shift shows up
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if got, want := dev.Target.RGBAAt(x, y), bg.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func foregroundKeyed() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, keyWhite)
		}
	}
	return img
}

func TestViewportResize(t *testing.T) {
	dev := soft.NewDevice(1280, 720)
	quad := dev.NewQuad(graphics.QuadVertices())
	c := renderer.NewCompositor(quad, dev.Viewport)

	if !c.SetViewport(800, 600) {
		t.Fatalf("SetViewport rejected 800x600")
	}
	// GL origin is bottom-left; the 800x600 viewport occupies the bottom of a 720-row target.
	if got, want := dev.ViewportRect(), image.Rect(0, 120, 800, 720); got != want {
		t.Errorf("viewport = %v, want %v", got, want)
	}

	vs := graphics.QuadVertices()
	if vs[0].Position[0] != -1 || vs[2].Position[0] != 1 {
		t.Errorf("quad vertices changed by resize: %v", vs)
	}
}

func TestDisposeReleasesAllObjects(t *testing.T) {
	dev, c := newScene(background(), foreground())
	if dev.Live() != 5 {
		t.Fatalf("live = %d, want 5", dev.Live())
	}
	c.Dispose()
	if dev.Live() != 0 {
		t.Errorf("live after Dispose = %d, want 0", dev.Live())
	}
}

func TestSampleBilinear(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	tex := soft.NewDevice(1, 1).NewTexture(img)

	mid := tex.Sample(0.5, 0.5)
	if mid[0] < 0.49 || mid[0] > 0.51 {
		t.Errorf("midpoint red = %v, want 0.5", mid[0])
	}
	if edge := tex.Sample(0, 0.5); edge[0] != 0 {
		t.Errorf("left edge red = %v, want 0 (clamped)", edge[0])
	}
	if edge := tex.Sample(1, 0.5); edge[0] != 1 {
		t.Errorf("right edge red = %v, want 1 (clamped)", edge[0])
	}
}
