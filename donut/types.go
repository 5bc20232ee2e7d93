// =======================
// donut/types.go
// =======================

package donut

import "math"

// Background marks a framebuffer cell no sample has reached since the last
// clear. It lies outside the brightness range [-1, 1].
const Background = -2.0

// Defaults reproduce the classic 64x64 spinning donut.
const (
	DefaultWidth         = 64
	DefaultHeight        = 64
	DefaultFocalDistance = 100
	DefaultMajorRadius   = 50
	DefaultMinorRadius   = 20
	DefaultResolution    = 256
	DefaultFrames        = 120
	DefaultFPS           = 30
)

var (
	DefaultLight     = Vec3{0, -1, 0}
	DefaultOffset    = Vec3{0, 0, 250}
	DefaultRotations = Orientation{X: 0.5, Y: 1, Z: 1.5}
)

// Camera defines the projection scale and clip bounds.
type Camera struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	FocalDistance float64 `json:"focal_distance"`
}

// TorusConfig describes the generating circle (radius MinorRadius, centred
// MajorRadius from the sweep axis) and how densely it is sampled.
type TorusConfig struct {
	MajorRadius float64 `json:"major_radius"`
	MinorRadius float64 `json:"minor_radius"`
	ResolutionA int     `json:"resolution_a"`
	ResolutionB int     `json:"resolution_b"`
	Light       Vec3    `json:"light"`
	Offset      Vec3    `json:"offset"`
}

// AnimationConfig controls the frame sequence. Rotations holds how many
// full turns each axis makes over the whole sequence.
type AnimationConfig struct {
	Frames    int         `json:"frames"`
	FPS       float64     `json:"fps"`
	Rotations Orientation `json:"rotations"`
}

// Sample is a surface point in camera space with its rotated normal.
type Sample struct {
	Position Vec3
	Normal   Vec3
}

// SurfaceSample is a lit surface point ready for projection.
type SurfaceSample struct {
	Position   Vec3
	Brightness float64
}

func (c Camera) validate() error {
	if c.Width <= 0 {
		return configErr("width", "must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return configErr("height", "must be positive, got %d", c.Height)
	}
	if !(c.FocalDistance > 0) || math.IsInf(c.FocalDistance, 0) {
		return configErr("focal_distance", "must be positive and finite, got %g", c.FocalDistance)
	}
	return nil
}

func (c TorusConfig) validate() error {
	if !(c.MajorRadius > 0) {
		return configErr("major_radius", "must be positive, got %g", c.MajorRadius)
	}
	if !(c.MinorRadius > 0) {
		return configErr("minor_radius", "must be positive, got %g", c.MinorRadius)
	}
	if c.ResolutionA <= 0 {
		return configErr("resolution_a", "must be positive, got %d", c.ResolutionA)
	}
	if c.ResolutionB <= 0 {
		return configErr("resolution_b", "must be positive, got %d", c.ResolutionB)
	}
	return nil
}

func (c AnimationConfig) validate() error {
	if c.Frames <= 0 {
		return configErr("frames", "must be positive, got %d", c.Frames)
	}
	if !(c.FPS > 0) || math.IsInf(c.FPS, 0) {
		return configErr("fps", "must be positive and finite, got %g", c.FPS)
	}
	return nil
}
