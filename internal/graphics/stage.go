package graphics

import (
	_ "embed"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	//go:embed shaders/quad.vert
	quadVertexSource string
	//go:embed shaders/blit.frag
	blitFragmentSource string
	//go:embed shaders/chroma_key.frag
	chromaKeyFragmentSource string
)

// CompositeStage is the fragment half of a layer program. The stage is fixed
// for the lifetime of the program it is built into.
type CompositeStage interface {
	// Name identifies the stage in logs and errors.
	Name() string
	// FragmentSource returns the GLSL fragment stage.
	FragmentSource() string
	// Passes reports whether a sampled colour is written to the framebuffer.
	Passes(color mgl32.Vec4) bool

	configure(s *Shader)
}

// Blit writes every sampled texel unchanged.
type Blit struct{}

func (Blit) Name() string           { return "blit" }
func (Blit) FragmentSource() string { return blitFragmentSource }
func (Blit) Passes(mgl32.Vec4) bool { return true }
func (Blit) configure(s *Shader)    { s.SetInt("tex", 0) }

// ChromaKey discards texels whose colour lies within Tolerance of Key on
// every channel, leaving whatever was drawn beneath.
type ChromaKey struct {
	Key       mgl64.Vec3
	Tolerance float64
}

func (ChromaKey) Name() string           { return "chroma-key" }
func (ChromaKey) FragmentSource() string { return chromaKeyFragmentSource }

// Passes is the complement of Discards.
func (k ChromaKey) Passes(c mgl32.Vec4) bool {
	return !k.Discards(float64(c[0]), float64(c[1]), float64(c[2]))
}

// Discards evaluates the mask predicate |c-key| < tolerance on r, g and b.
// Channels are clamped to [0,1] first, as a sampler would return them.
func (k ChromaKey) Discards(r, g, b float64) bool {
	return within(r, k.Key[0], k.Tolerance) &&
		within(g, k.Key[1], k.Tolerance) &&
		within(b, k.Key[2], k.Tolerance)
}

func (k ChromaKey) configure(s *Shader) {
	s.SetInt("tex", 0)
	s.SetVector3("keyColor", float32(k.Key[0]), float32(k.Key[1]), float32(k.Key[2]))
	s.SetFloat("tolerance", float32(k.Tolerance))
}

func within(v, key, tol float64) bool {
	return math.Abs(clamp01(v)-key) < tol
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
