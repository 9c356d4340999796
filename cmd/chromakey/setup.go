package main

import (
	"fmt"

	"chromakey/internal/config"
	"chromakey/internal/graphics"
	"chromakey/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, config.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, config.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Disable V-Sync so the frame counter measures raw throughput
	glfw.SwapInterval(0)

	return window, nil
}

// setupCompositor builds both layer programs, the shared quad and both
// textures. On failure everything created so far is released.
func setupCompositor() (c *renderer.Compositor, err error) {
	var created []interface{ Delete() }
	defer func() {
		if err != nil {
			for i := len(created) - 1; i >= 0; i-- {
				created[i].Delete()
			}
		}
	}()

	background, err := graphics.BuildProgram(graphics.Blit{})
	if err != nil {
		return nil, fmt.Errorf("background program: %w", err)
	}
	created = append(created, background)

	foreground, err := graphics.BuildProgram(graphics.ChromaKey{Key: config.MaskKey, Tolerance: config.MaskTolerance})
	if err != nil {
		return nil, fmt.Errorf("foreground program: %w", err)
	}
	created = append(created, foreground)

	quad := graphics.NewQuad()
	created = append(created, quad)

	fgTexture, err := graphics.LoadTexture(config.ForegroundImage)
	if err != nil {
		return nil, err
	}
	created = append(created, fgTexture)

	bgTexture, err := graphics.LoadTexture(config.BackgroundImage)
	if err != nil {
		return nil, err
	}

	return renderer.NewCompositor(quad, graphics.Viewport,
		renderer.Layer{Name: "background", Program: background, Texture: bgTexture},
		renderer.Layer{Name: "foreground", Program: foreground, Texture: fgTexture},
	), nil
}
