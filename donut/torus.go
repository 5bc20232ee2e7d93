// =======================
// donut/torus.go
// =======================

package donut

import (
	"fmt"
	"math"
)

// Torus samples a torus swept about the Y axis. The generating circle lies
// in the XY plane and is carried around Y at distance MajorRadius.
type Torus struct {
	cfg   TorusConfig
	light Vec3 // unit length

	// circle and its normals are independent of orientation, so they are
	// built once per torus.
	circle []Vec3
	sweep  []float64
}

// NewTorus validates cfg and prepares the generating circle.
func NewTorus(cfg TorusConfig) (*Torus, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	light, err := Normalize(cfg.Light)
	if err != nil {
		return nil, fmt.Errorf("light direction: %w", err)
	}

	t := &Torus{
		cfg:    cfg,
		light:  light,
		circle: make([]Vec3, cfg.ResolutionA),
		sweep:  make([]float64, cfg.ResolutionB),
	}

	offset := Vec3{0, cfg.MinorRadius, 0}
	for i := range t.circle {
		a := 2 * math.Pi * float64(i) / float64(cfg.ResolutionA)
		t.circle[i] = Rotate(AxisZ, a, offset)
	}
	for j := range t.sweep {
		t.sweep[j] = 2 * math.Pi * float64(j) / float64(cfg.ResolutionB)
	}
	return t, nil
}

// Config returns the configuration the torus was built from.
func (t *Torus) Config() TorusConfig { return t.cfg }

// Light returns the normalized light direction.
func (t *Torus) Light() Vec3 { return t.light }

// Len is the number of samples produced per frame.
func (t *Torus) Len() int { return len(t.circle) * len(t.sweep) }

// Sample returns ResolutionA*ResolutionB surface points in a-major order.
// Positions are rotated by o and then moved by the configured offset;
// normals are only rotated.
func (t *Torus) Sample(o Orientation) []Sample {
	out := make([]Sample, 0, t.Len())
	tr := o.Transform()
	major := Vec3{t.cfg.MajorRadius, 0, 0}

	for _, c := range t.circle {
		p := c.Add(major)
		for _, b := range t.sweep {
			local := Rotate(AxisY, b, p)
			normal := Rotate(AxisY, b, c)
			out = append(out, Sample{
				Position: tr.Apply(local).Add(t.cfg.Offset),
				Normal:   tr.Apply(normal),
			})
		}
	}
	return out
}

// Draw samples the surface at o and lights every sample.
func (t *Torus) Draw(o Orientation) ([]SurfaceSample, error) {
	samples := t.Sample(o)
	out := make([]SurfaceSample, len(samples))
	for i, s := range samples {
		n, err := Normalize(s.Normal)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = SurfaceSample{
			Position:   s.Position,
			Brightness: shade(n, t.light),
		}
	}
	return out, nil
}
