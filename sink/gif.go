package sink

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"torus/donut"
)

// GIFSink collects frames and encodes them as one looping animated GIF
// when closed.
type GIFSink struct {
	w       io.Writer
	opts    RasterOptions
	delay   int
	palette color.Palette
	anim    gif.GIF
}

// NewGIFSink encodes to w at fps frames per second. GIF delays are whole
// centiseconds, so the rate is rounded.
func NewGIFSink(w io.Writer, fps float64, opts RasterOptions) *GIFSink {
	delay := int(math.Round(100 / fps))
	if delay < 1 {
		delay = 1
	}
	return &GIFSink{
		w:       w,
		opts:    opts,
		delay:   delay,
		palette: opts.colormap().Palette(256),
		anim:    gif.GIF{LoopCount: 0},
	}
}

// Delay is the per-frame delay in centiseconds.
func (g *GIFSink) Delay() int { return g.delay }

// Len is the number of frames collected so far.
func (g *GIFSink) Len() int { return len(g.anim.Image) }

func (g *GIFSink) WriteFrame(frame int, fb *donut.Framebuffer) error {
	src := Render(frame, fb, g.opts)
	dst := image.NewPaletted(src.Bounds(), g.palette)
	xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	g.anim.Image = append(g.anim.Image, dst)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Close encodes the collected frames. It does not close the writer.
func (g *GIFSink) Close() error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("gif: no frames")
	}
	if err := gif.EncodeAll(g.w, &g.anim); err != nil {
		return fmt.Errorf("gif: %w", err)
	}
	donut.Logger().Info("gif written", "frames", len(g.anim.Image), "delay_cs", g.delay)
	return nil
}
