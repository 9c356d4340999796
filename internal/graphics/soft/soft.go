// Package soft is a CPU rasteriser with the same program, texture and
// geometry contracts as the OpenGL types in package graphics. It renders into
// an *image.RGBA and exists to check compositing without a GL context.
package soft

import (
	"image"
	"image/color"
	"math"

	"chromakey/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Device holds the framebuffer and the currently bound objects.
type Device struct {
	Target *image.RGBA

	viewport image.Rectangle // image coordinates, rows growing downward
	program  *Program
	texture  *Texture
	quad     *Quad

	live  int
	draws int
}

// NewDevice creates a width×height framebuffer with the viewport covering it.
func NewDevice(width, height int) *Device {
	r := image.Rect(0, 0, width, height)
	return &Device{Target: image.NewRGBA(r), viewport: r}
}

// Clear fills the whole framebuffer.
func (d *Device) Clear(c color.RGBA) {
	for i := 0; i < len(d.Target.Pix); i += 4 {
		d.Target.Pix[i+0] = c.R
		d.Target.Pix[i+1] = c.G
		d.Target.Pix[i+2] = c.B
		d.Target.Pix[i+3] = c.A
	}
}

// Viewport takes GL window coordinates, origin bottom-left.
func (d *Device) Viewport(x, y, width, height int32) {
	h := d.Target.Rect.Dy()
	top := h - int(y) - int(height)
	d.viewport = image.Rect(int(x), top, int(x)+int(width), top+int(height))
}

// ViewportRect returns the viewport in image coordinates.
func (d *Device) ViewportRect() image.Rectangle { return d.viewport }

// Live is the number of created objects not yet deleted.
func (d *Device) Live() int { return d.live }

// Draws is the number of draw calls that reached the rasteriser.
func (d *Device) Draws() int { return d.draws }

// Program runs a composite stage per fragment.
type Program struct {
	dev   *Device
	stage graphics.CompositeStage
}

func (d *Device) NewProgram(stage graphics.CompositeStage) *Program {
	d.live++
	return &Program{dev: d, stage: stage}
}

func (p *Program) Use() { p.dev.program = p }

func (p *Program) Delete() {
	if p.stage != nil {
		p.stage = nil
		p.dev.live--
	}
}

// Texture samples an RGBA image bilinearly with clamp-to-edge wrapping.
type Texture struct {
	dev *Device
	img *image.RGBA
}

func (d *Device) NewTexture(img *image.RGBA) *Texture {
	d.live++
	return &Texture{dev: d, img: img}
}

func (t *Texture) Bind() { t.dev.texture = t }

func (t *Texture) Delete() {
	if t.img != nil {
		t.img = nil
		t.dev.live--
	}
}

// Sample returns the filtered colour at (u,v); v=0 is the image's top row.
func (t *Texture) Sample(u, v float64) mgl32.Vec4 {
	x := u*float64(t.img.Rect.Dx()) - 0.5
	y := v*float64(t.img.Rect.Dy()) - 0.5
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	var out mgl32.Vec4
	c00, c10 := t.texel(ix, iy), t.texel(ix+1, iy)
	c01, c11 := t.texel(ix, iy+1), t.texel(ix+1, iy+1)
	for i := range out {
		top := c00[i]*(1-fx) + c10[i]*fx
		bottom := c01[i]*(1-fx) + c11[i]*fx
		out[i] = float32(top*(1-fy) + bottom*fy)
	}
	return out
}

func (t *Texture) texel(x, y int) [4]float64 {
	r := t.img.Rect
	x = min(max(x, 0), r.Dx()-1)
	y = min(max(y, 0), r.Dy()-1)
	c := t.img.RGBAAt(r.Min.X+x, r.Min.Y+y)
	return [4]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// Quad rasterises its vertices as a triangle fan.
type Quad struct {
	dev      *Device
	vertices []graphics.Vertex
}

func (d *Device) NewQuad(vertices []graphics.Vertex) *Quad {
	d.live++
	return &Quad{dev: d, vertices: vertices}
}

func (q *Quad) Bind() { q.dev.quad = q }

// Draw rasterises the bound quad, as GL draws the bound vertex array
// regardless of which object the call came from.
func (q *Quad) Draw() { q.dev.draw() }

func (q *Quad) Delete() {
	if q.vertices != nil {
		q.vertices = nil
		q.dev.live--
	}
}

type point struct{ x, y, u, v float64 }

func (d *Device) draw() {
	if d.program == nil || d.program.stage == nil || d.texture == nil || d.texture.img == nil || d.quad == nil {
		return
	}
	vs := d.quad.vertices
	for i := 1; i+1 < len(vs); i++ {
		d.triangle(d.project(vs[0]), d.project(vs[i]), d.project(vs[i+1]))
	}
	d.draws++
}

func (d *Device) project(v graphics.Vertex) point {
	w := float64(v.Position[3])
	nx, ny := float64(v.Position[0])/w, float64(v.Position[1])/w
	vp := d.viewport
	return point{
		x: float64(vp.Min.X) + (nx+1)/2*float64(vp.Dx()),
		y: float64(vp.Min.Y) + (1-ny)/2*float64(vp.Dy()),
		u: float64(v.UV[0]),
		v: float64(v.UV[1]),
	}
}

func (d *Device) triangle(a, b, c point) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	bounds := image.Rect(
		int(math.Floor(min(a.x, b.x, c.x))), int(math.Floor(min(a.y, b.y, c.y))),
		int(math.Ceil(max(a.x, b.x, c.x))), int(math.Ceil(max(a.y, b.y, c.y))),
	).Intersect(d.viewport).Intersect(d.Target.Rect)

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			w0 := edge(b, c, x, y) / area
			w1 := edge(c, a, x, y) / area
			w2 := edge(a, b, x, y) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			u := w0*a.u + w1*b.u + w2*c.u
			v := w0*a.v + w1*b.v + w2*c.v
			col := d.texture.Sample(u, v)
			if !d.program.stage.Passes(col) {
				continue
			}
			d.Target.SetRGBA(px, py, toRGBA(col))
		}
	}
}

func edge(a, b point, x, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func toRGBA(c mgl32.Vec4) color.RGBA {
	q := func(f float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(f))) * 255))
	}
	return color.RGBA{R: q(c[0]), G: q(c[1]), B: q(c[2]), A: q(c[3])}
}
