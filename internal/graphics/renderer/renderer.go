package renderer

import (
	"chromakey/internal/graphics"
	"chromakey/internal/profiling"
)

// Compositor draws its layers back to front over one shared geometry.
type Compositor struct {
	geometry Geometry
	layers   []Layer
	viewport ViewportFunc

	width, height int
	profileNames  []string
}

// NewCompositor takes ownership of geometry and every layer's program and
// texture. Layers are drawn in the order given.
func NewCompositor(geometry Geometry, viewport ViewportFunc, layers ...Layer) *Compositor {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = "renderer.layer." + l.Name
	}
	return &Compositor{
		geometry:     geometry,
		layers:       layers,
		viewport:     viewport,
		profileNames: names,
	}
}

// Render binds the geometry once and draws each layer with its own program
// and texture.
func (c *Compositor) Render() {
	defer profiling.Track("renderer.Render")()

	c.geometry.Bind()
	for i, l := range c.layers {
		stop := profiling.Track(c.profileNames[i])
		l.Program.Use()
		l.Texture.Bind()
		c.geometry.Draw()
		stop()
	}
}

// SetViewport covers (0,0)-(width,height). Non-positive sizes, as reported
// for a minimised window, are ignored and false is returned.
func (c *Compositor) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		graphics.Logger().Warn("ignoring empty viewport", "width", width, "height", height)
		return false
	}
	c.viewport(0, 0, int32(width), int32(height))
	c.width, c.height = width, height
	return true
}

// Viewport returns the last applied viewport size.
func (c *Compositor) Viewport() (width, height int) {
	return c.width, c.height
}

// Layers returns the layers in draw order.
func (c *Compositor) Layers() []Layer {
	return c.layers
}

// Dispose releases layers in reverse order, then the geometry.
func (c *Compositor) Dispose() {
	for i := len(c.layers) - 1; i >= 0; i-- {
		c.layers[i].Texture.Delete()
		c.layers[i].Program.Delete()
	}
	c.layers = nil
	if c.geometry != nil {
		c.geometry.Delete()
		c.geometry = nil
	}
}
