package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// PrepareState sets the fixed pipeline state the composite relies on: no
// depth test, no blending, no culling. Layers overwrite in submission order
// and a discarded fragment leaves the pixel below untouched.
func PrepareState(clear [4]float32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])

	Logger().Info("context ready",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))
}

// Viewport maps clip space to the given framebuffer rectangle.
func Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
