package sink

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"torus/donut"
)

// RasterOptions control how a framebuffer becomes an image.
type RasterOptions struct {
	Colormap Colormap
	// Scale enlarges each framebuffer cell to Scale x Scale pixels.
	Scale int
	// Caption, if set, is a fmt format receiving the frame index and the
	// frame count, e.g. "frame %d/%d".
	Caption string
	Frames  int
}

func (o RasterOptions) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

func (o RasterOptions) colormap() Colormap {
	if len(o.Colormap.Stops) == 0 {
		return Viridis
	}
	return o.Colormap
}

// Rasterize converts fb to an image one pixel per cell, highest row at
// the top.
func Rasterize(fb *donut.Framebuffer, cmap Colormap) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		y := h - 1 - row
		for col := 0; col < w; col++ {
			b, _ := fb.At(row, col)
			img.SetRGBA(col, y, cmap.Color(b))
		}
	}
	return img
}

// Render rasterizes fb, scales it up and draws the caption.
func Render(frame int, fb *donut.Framebuffer, opts RasterOptions) *image.RGBA {
	img := Rasterize(fb, opts.colormap())
	if s := opts.scale(); s > 1 {
		b := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*s, b.Dy()*s))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, b, xdraw.Src, nil)
		img = big
	}
	if opts.Caption != "" {
		drawCaption(img, fmt.Sprintf(opts.Caption, frame, opts.Frames))
	}
	return img
}

func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(2, img.Bounds().Dy()-face.Descent-1),
	}
	d.DrawString(text)
}

// PNGSink writes every frame as a PNG file. Path may contain a fmt verb for
// the frame index ("donut-%03d.png"); without one each frame overwrites
// the same file.
type PNGSink struct {
	path string
	opts RasterOptions
}

func NewPNGSink(path string, opts RasterOptions) *PNGSink {
	return &PNGSink{path: path, opts: opts}
}

func (p *PNGSink) WriteFrame(frame int, fb *donut.Framebuffer) error {
	name := p.path
	if strings.Contains(name, "%") {
		name = fmt.Sprintf(name, frame)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, Render(frame, fb, p.opts)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	donut.Logger().Debug("png written", "path", name, "frame", frame)
	return f.Close()
}

func (p *PNGSink) Close() error { return nil }
