// =======================
// donut/config.go
// =======================

package donut

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Config is the whole configuration surface of a render.
type Config struct {
	Camera    Camera          `json:"camera"`
	Torus     TorusConfig     `json:"torus"`
	Animation AnimationConfig `json:"animation"`
}

// DefaultConfig returns the classic donut: a 64x64 view at focal distance
// 100 of an R=50, r=20 torus 250 units away, lit from above, spinning
// 0.5/1/1.5 turns about X/Y/Z over 120 frames at 30 fps.
func DefaultConfig() Config {
	return Config{
		Camera: Camera{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			FocalDistance: DefaultFocalDistance,
		},
		Torus: TorusConfig{
			MajorRadius: DefaultMajorRadius,
			MinorRadius: DefaultMinorRadius,
			ResolutionA: DefaultResolution,
			ResolutionB: DefaultResolution,
			Light:       DefaultLight,
			Offset:      DefaultOffset,
		},
		Animation: AnimationConfig{
			Frames:    DefaultFrames,
			FPS:       DefaultFPS,
			Rotations: DefaultRotations,
		},
	}
}

// LoadConfig reads a JSON configuration. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a JSON configuration over DefaultConfig. Unknown
// fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks every section and the light direction.
func (c Config) Validate() error {
	if err := c.Camera.validate(); err != nil {
		return err
	}
	if err := c.Torus.validate(); err != nil {
		return err
	}
	if _, err := Normalize(c.Torus.Light); err != nil {
		return fmt.Errorf("light direction: %w", err)
	}
	return c.Animation.validate()
}
