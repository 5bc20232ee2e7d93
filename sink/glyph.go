package sink

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"torus/donut"
)

// DefaultRamp runs from sparse to dense.
const DefaultRamp = ".,-~:;=!*#$@"

// Ramp maps brightness in [-1, 1] onto an ordered run of glyphs. The zero
// Ramp renders every cell as a space.
type Ramp struct {
	glyphs []rune
	scale  float64
}

// NewRamp builds a ramp from glyphs ordered sparse to dense. Every glyph
// must occupy exactly one terminal cell.
func NewRamp(glyphs string) (Ramp, error) {
	rs := []rune(glyphs)
	if len(rs) == 0 {
		return Ramp{}, &donut.ConfigurationError{Field: "ramp", Reason: "must not be empty"}
	}
	for _, r := range rs {
		if w := runewidth.RuneWidth(r); w != 1 {
			return Ramp{}, &donut.ConfigurationError{
				Field:  "ramp",
				Reason: fmt.Sprintf("glyph %q is %d cells wide", r, w),
			}
		}
	}
	return Ramp{glyphs: rs, scale: float64(len(rs)-1) / 2}, nil
}

// MustRamp is NewRamp that panics on error.
func MustRamp(glyphs string) Ramp {
	r, err := NewRamp(glyphs)
	if err != nil {
		panic(err)
	}
	return r
}

// Len is the number of glyphs in the ramp.
func (r Ramp) Len() int { return len(r.glyphs) }

// Index returns floor(scale*(b+1)) clamped to the ramp. With the default
// twelve glyphs scale is 5.5, so -1 maps to 0 and +1 to 11.
func (r Ramp) Index(b float64) int {
	v := math.Floor(r.scale * (b + 1))
	switch {
	case len(r.glyphs) == 0 || math.IsNaN(v) || v < 0:
		return 0
	case v > float64(len(r.glyphs)-1):
		return len(r.glyphs) - 1
	}
	return int(v)
}

// Glyph returns the glyph for b; Background maps to a space.
func (r Ramp) Glyph(b float64) rune {
	if b == donut.Background || len(r.glyphs) == 0 {
		return ' '
	}
	return r.glyphs[r.Index(b)]
}

// Render returns one line per framebuffer row, top row first.
func (r Ramp) Render(fb *donut.Framebuffer) string {
	var sb strings.Builder
	sb.Grow((fb.Width() + 1) * fb.Height())
	for row := fb.Height() - 1; row >= 0; row-- {
		for col := 0; col < fb.Width(); col++ {
			b, _ := fb.At(row, col)
			sb.WriteRune(r.Glyph(b))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GlyphSink prints frames as text. On a terminal each frame is drawn over
// the previous one.
type GlyphSink struct {
	w    *bufio.Writer
	ramp Ramp
	home bool
}

// NewGlyphSink writes frames to w using ramp.
func NewGlyphSink(w io.Writer, ramp Ramp) *GlyphSink {
	return &GlyphSink{
		w:    bufio.NewWriter(w),
		ramp: ramp,
		home: isTerminal(w),
	}
}

func (g *GlyphSink) WriteFrame(frame int, fb *donut.Framebuffer) error {
	if g.home {
		if frame == 0 {
			g.w.WriteString("\x1b[2J")
		}
		g.w.WriteString("\x1b[H")
	}
	g.w.WriteString(g.ramp.Render(fb))
	return g.w.Flush()
}

func (g *GlyphSink) Close() error { return g.w.Flush() }

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
