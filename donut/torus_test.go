package donut

import (
	"errors"
	"math"
	"testing"
)

func testTorusConfig(resA, resB int) TorusConfig {
	return TorusConfig{
		MajorRadius: 50,
		MinorRadius: 20,
		ResolutionA: resA,
		ResolutionB: resB,
		Light:       V3(0, -1, 0),
		Offset:      V3(0, 0, 250),
	}
}

func TestTorusSampleCount(t *testing.T) {
	tor, err := NewTorus(testTorusConfig(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tor.Sample(Orientation{})); got != 16 {
		t.Fatalf("got %d samples, want 16", got)
	}
	if tor.Len() != 16 {
		t.Errorf("Len() = %d, want 16", tor.Len())
	}

	tor, err = NewTorus(testTorusConfig(3, 7))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tor.Sample(Orientation{X: 1})); got != 21 {
		t.Errorf("got %d samples, want 21", got)
	}
}

func TestTorusSampleDistanceFromAxis(t *testing.T) {
	cfg := testTorusConfig(16, 24)
	tor, err := NewTorus(cfg)
	if err != nil {
		t.Fatal(err)
	}
	lo := cfg.MajorRadius - cfg.MinorRadius - 1e-9
	hi := cfg.MajorRadius + cfg.MinorRadius + 1e-9

	for i, s := range tor.Sample(Orientation{}) {
		local := s.Position.Sub(cfg.Offset)
		d := math.Hypot(local.X, local.Z)
		if d < lo || d > hi {
			t.Fatalf("sample %d at %v: distance %v outside [%v, %v]", i, local, d, lo, hi)
		}
		if math.Abs(local.Y) > cfg.MinorRadius+1e-9 {
			t.Fatalf("sample %d at %v: |y| exceeds minor radius", i, local)
		}
	}
}

func TestTorusFirstSample(t *testing.T) {
	tor, err := NewTorus(testTorusConfig(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	s := tor.Sample(Orientation{})[0]
	if !near(s.Position, V3(50, 20, 250)) {
		t.Errorf("position = %v, want (50, 20, 250)", s.Position)
	}
	if !near(s.Normal, V3(0, 20, 0)) {
		t.Errorf("normal = %v, want (0, 20, 0)", s.Normal)
	}
}

// The normal is the offset from the tube centre, so position minus offset
// minus normal must land on the central circle whatever the orientation.
func TestTorusNormalsFollowPositions(t *testing.T) {
	cfg := testTorusConfig(12, 12)
	tor, err := NewTorus(cfg)
	if err != nil {
		t.Fatal(err)
	}
	o := Orientation{X: 0.7, Y: -1.1, Z: 2.3}
	inv := Transform{{AxisZ, -o.Z}, {AxisY, -o.Y}, {AxisX, -o.X}}

	for i, s := range tor.Sample(o) {
		if math.Abs(s.Normal.Len()-cfg.MinorRadius) > 1e-9 {
			t.Fatalf("sample %d: normal length %v, want %v", i, s.Normal.Len(), cfg.MinorRadius)
		}
		centre := inv.Apply(s.Position.Sub(cfg.Offset).Sub(s.Normal))
		if math.Abs(centre.Len()-cfg.MajorRadius) > 1e-9 || math.Abs(centre.Y) > 1e-9 {
			t.Fatalf("sample %d: tube centre %v not on the central circle", i, centre)
		}
	}
}

func TestTorusDrawBrightnessRange(t *testing.T) {
	tor, err := NewTorus(testTorusConfig(32, 32))
	if err != nil {
		t.Fatal(err)
	}
	samples, err := tor.Draw(Orientation{X: 0.2, Y: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range samples {
		if s.Brightness < -1-1e-12 || s.Brightness > 1+1e-12 {
			t.Fatalf("sample %d brightness %v outside [-1, 1]", i, s.Brightness)
		}
	}
	// a=0, b=0 has normal (0, 1, 0) before rotation; unrotated it faces the light source.
	flat, _ := tor.Draw(Orientation{})
	if math.Abs(flat[0].Brightness-1) > 1e-12 {
		t.Errorf("top of the tube brightness = %v, want 1", flat[0].Brightness)
	}
}

func TestNewTorusRejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*TorusConfig)
		field string
	}{
		{"zero major radius", func(c *TorusConfig) { c.MajorRadius = 0 }, "major_radius"},
		{"negative minor radius", func(c *TorusConfig) { c.MinorRadius = -1 }, "minor_radius"},
		{"zero resolution a", func(c *TorusConfig) { c.ResolutionA = 0 }, "resolution_a"},
		{"zero resolution b", func(c *TorusConfig) { c.ResolutionB = 0 }, "resolution_b"},
		{"NaN radius", func(c *TorusConfig) { c.MajorRadius = math.NaN() }, "major_radius"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testTorusConfig(4, 4)
			tc.edit(&cfg)
			_, err := NewTorus(cfg)
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConfigurationError", err)
			}
			if ce.Field != tc.field {
				t.Errorf("field = %q, want %q", ce.Field, tc.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("error does not match ErrInvalidConfig")
			}
		})
	}
}

func TestNewTorusZeroLight(t *testing.T) {
	cfg := testTorusConfig(4, 4)
	cfg.Light = Vec3{}
	if _, err := NewTorus(cfg); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("err = %v, want ErrDegenerateVector", err)
	}
}
