package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"chromakey/internal/config"
	"chromakey/internal/game"
	"chromakey/internal/graphics"
	"chromakey/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)
	graphics.SetLogger(logger)
	closer.Bind(func() {
		logger.Info("shutdown")
	})

	if err := run(); err != nil {
		closer.Fatalln(err)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	// Load: everything GPU-side is created once, before the first frame.
	graphics.PrepareState(config.ClearColor)
	compositor, err := setupCompositor()
	if err != nil {
		return err
	}
	defer compositor.Dispose()

	compositor.SetViewport(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		compositor.SetViewport(width, height)
	})

	counter := game.NewFrameCounter(config.FPSReportPeriod, time.Now, func(fps, frames int) {
		window.SetTitle(fmt.Sprintf("FPS: %d", fps))
		slog.Debug("frame rate", "fps", fps, "frames", frames, "top", profiling.TopN(3, frames))
		profiling.ResetFrame()
	})

	for !window.ShouldClose() {
		compositor.Render()
		window.SwapBuffers()
		counter.OnFrameRendered()
		glfw.PollEvents()
	}
	return nil
}
