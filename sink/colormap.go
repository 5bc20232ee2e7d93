package sink

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"torus/donut"
)

// Colormap maps brightness onto a gradient of color stops blended in
// CIE-Lab. Background cells get their own color.
type Colormap struct {
	Stops      []colorful.Color
	Background colorful.Color
}

// Viridis approximates matplotlib's default colormap. The background takes
// the darkest stop, matching an autoscaled image whose minimum is the
// background sentinel.
var Viridis = Colormap{
	Stops: []colorful.Color{
		mustHex("#440154"),
		mustHex("#482878"),
		mustHex("#3e4989"),
		mustHex("#31688e"),
		mustHex("#26828e"),
		mustHex("#1f9e89"),
		mustHex("#35b779"),
		mustHex("#6ece58"),
		mustHex("#b5de2b"),
		mustHex("#fde725"),
	},
	Background: mustHex("#440154"),
}

// Grayscale runs from black to white with a black background.
var Grayscale = Colormap{
	Stops: []colorful.Color{
		mustHex("#202020"),
		mustHex("#ffffff"),
	},
	Background: mustHex("#000000"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// At returns the gradient color at t in [0, 1]; t is clamped.
func (c Colormap) At(t float64) colorful.Color {
	n := len(c.Stops)
	switch {
	case n == 0:
		return c.Background
	case n == 1 || math.IsNaN(t) || t <= 0:
		return c.Stops[0]
	case t >= 1:
		return c.Stops[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	return c.Stops[i].BlendLab(c.Stops[i+1], pos-float64(i)).Clamped()
}

// Color maps a framebuffer brightness. The [-1, 1] range is mapped onto
// the full gradient; values outside it are clamped here rather than
// upstream.
func (c Colormap) Color(b float64) color.RGBA {
	col := c.Background
	if b != donut.Background {
		col = c.At((b + 1) / 2)
	}
	r, g, bl := col.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Palette returns the background color, white for captions, and n-2
// evenly spaced gradient samples.
func (c Colormap) Palette(n int) color.Palette {
	if n < 3 {
		n = 3
	}
	p := make(color.Palette, 0, n)
	r, g, b := c.Background.RGB255()
	p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff}, color.White)
	steps := n - 2
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		r, g, b := c.At(t).RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p
}
