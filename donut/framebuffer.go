package donut

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"math"
)

// Framebuffer is a row-major brightness grid with a parallel depth grid.
// Both are cleared together and written together, so each cell always holds
// the brightness and depth of the same sample.
//
// Row indices grow with camera-space Y, so row 0 is the bottom of the view.
type Framebuffer struct {
	cam        Camera
	brightness []float64
	depth      []float64
}

// NewFramebuffer validates cam and returns a cleared framebuffer for it.
func NewFramebuffer(cam Camera) (*Framebuffer, error) {
	if err := cam.validate(); err != nil {
		return nil, err
	}
	n := cam.Width * cam.Height
	fb := &Framebuffer{
		cam:        cam,
		brightness: make([]float64, n),
		depth:      make([]float64, n),
	}
	fb.Clear()
	return fb, nil
}

func (fb *Framebuffer) Camera() Camera { return fb.cam }
func (fb *Framebuffer) Width() int     { return fb.cam.Width }
func (fb *Framebuffer) Height() int    { return fb.cam.Height }

// Clear resets every brightness cell to Background and every depth cell to
// +Inf.
func (fb *Framebuffer) Clear() {
	inf := math.Inf(1)
	for i := range fb.brightness {
		fb.brightness[i] = Background
		fb.depth[i] = inf
	}
}

// Project perspective-projects s and stores it if it is the nearest sample
// seen at its pixel. Samples at or behind the camera plane, or outside the
// view, are dropped. It reports whether s was stored.
func (fb *Framebuffer) Project(s SurfaceSample) bool {
	p := s.Position
	if !(p.Z > 0) {
		return false
	}

	f := fb.cam.FocalDistance
	sx := math.Round(p.X * f / p.Z)
	sy := math.Round(p.Y * f / p.Z)

	// Bounds are checked on the float coordinates so far-off samples never
	// reach the int conversion. NaN fails the test too.
	halfW, halfH := fb.cam.Width/2, fb.cam.Height/2
	if !(math.Abs(sx) < float64(halfW)) || !(math.Abs(sy) < float64(halfH)) {
		return false
	}

	i := (int(sy)+halfH)*fb.cam.Width + int(sx) + halfW
	if p.Z < fb.depth[i] {
		fb.brightness[i] = s.Brightness
		fb.depth[i] = p.Z
		return true
	}
	return false
}

// ProjectAll projects every sample and returns how many were stored.
func (fb *Framebuffer) ProjectAll(samples []SurfaceSample) int {
	n := 0
	for _, s := range samples {
		if fb.Project(s) {
			n++
		}
	}
	return n
}

// At returns the brightness at (row, col) and whether any sample covers it.
func (fb *Framebuffer) At(row, col int) (float64, bool) {
	b := fb.brightness[row*fb.cam.Width+col]
	return b, b != Background
}

// Depth returns the depth stored at (row, col); +Inf when uncovered.
func (fb *Framebuffer) Depth(row, col int) float64 {
	return fb.depth[row*fb.cam.Width+col]
}

// Covered counts the cells holding a sample.
func (fb *Framebuffer) Covered() int {
	n := 0
	for _, b := range fb.brightness {
		if b != Background {
			n++
		}
	}
	return n
}

// MaxBrightness returns the largest stored brightness, or Background for an
// empty frame.
func (fb *Framebuffer) MaxBrightness() float64 {
	max := Background
	for _, b := range fb.brightness {
		if b != Background && b > max {
			max = b
		}
	}
	return max
}

// Equal reports whether both framebuffers hold identical cells.
func (fb *Framebuffer) Equal(o *Framebuffer) bool {
	if fb.cam != o.cam {
		return false
	}
	for i := range fb.brightness {
		if fb.brightness[i] != o.brightness[i] || fb.depth[i] != o.depth[i] {
			return false
		}
	}
	return true
}

// Checksum hashes every brightness and depth cell. Identical frames give
// identical checksums, which makes renders easy to compare across runs.
func (fb *Framebuffer) Checksum() string {
	h := sha256.New()
	buf := make([]byte, 16)
	for i := range fb.brightness {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(fb.brightness[i]))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(fb.depth[i]))
		h.Write(buf)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
