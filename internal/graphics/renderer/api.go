package renderer

// Program is a linked shader program.
type Program interface {
	Use()
	Delete()
}

// Texture is a sampled image bound to the active unit.
type Texture interface {
	Bind()
	Delete()
}

// Geometry is vertex state that can be bound once and drawn repeatedly.
type Geometry interface {
	Bind()
	Draw()
	Delete()
}

// ViewportFunc sets the framebuffer rectangle clip space maps onto.
type ViewportFunc func(x, y, width, height int32)

// Layer pairs a program with the texture it samples.
type Layer struct {
	Name    string
	Program Program
	Texture Texture
}
