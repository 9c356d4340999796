package config

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Window and context settings
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "chromakey"

	GLMajor = 4
	GLMinor = 1
)

// Layer image files, resolved against the working directory
const (
	BackgroundImage = "background.jpg"
	ForegroundImage = "foreground.jpg"
)

// Chroma key: a foreground texel within MaskTolerance of MaskKey on every
// channel is discarded.
var MaskKey = mgl64.Vec3{0.9, 0.9, 0.9}

const MaskTolerance = 0.2

// FPSReportPeriod is how long frames are accumulated before an FPS figure is published.
const FPSReportPeriod = 1500 * time.Millisecond

// ClearColor is purple; it only shows if the background fails to cover the viewport.
var ClearColor = [4]float32{0.5, 0, 0.5, 1}

// LogLevel is the level installed by the command's stderr handler.
const LogLevel = slog.LevelInfo
