package sink

import (
	"bytes"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"torus/donut"
)

func TestColormapEndpoints(t *testing.T) {
	c := Viridis
	first := color.RGBA{0x44, 0x01, 0x54, 0xff}
	last := color.RGBA{0xfd, 0xe7, 0x25, 0xff}

	tests := []struct {
		name string
		b    float64
		want color.RGBA
	}{
		{"background", donut.Background, first},
		{"darkest", -1, first},
		{"brightest", 1, last},
		{"clamped above", 4, last},
		{"clamped below", -1.5, first},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Color(tc.b); got != tc.want {
				t.Errorf("Color(%v) = %v, want %v", tc.b, got, tc.want)
			}
		})
	}

	mid := c.Color(0)
	if mid == first || mid == last {
		t.Errorf("Color(0) = %v sits on an endpoint", mid)
	}
}

func TestColormapPalette(t *testing.T) {
	p := Grayscale.Palette(256)
	if len(p) != 256 {
		t.Fatalf("palette has %d colors", len(p))
	}
	if p[0] != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("p[0] = %v, want background", p[0])
	}
	if p[1] != color.White {
		t.Errorf("p[1] = %v, want white", p[1])
	}
}

func TestRasterizeOrientation(t *testing.T) {
	fb := testFrame(t)
	img := Rasterize(fb, Grayscale)
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	// Framebuffer row 3 (top) col 2 holds brightness 1.
	if got := img.RGBAAt(2, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("top cell = %v, want white", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("background cell = %v, want black", got)
	}
}

func TestRenderScaleAndCaption(t *testing.T) {
	fb, err := donut.NewFramebuffer(donut.Camera{Width: 16, Height: 16, FocalDistance: 1})
	if err != nil {
		t.Fatal(err)
	}
	img := Render(0, fb, RasterOptions{Colormap: Grayscale, Scale: 5})
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Fatalf("scaled bounds = %v", b)
	}

	captioned := Render(3, fb, RasterOptions{Colormap: Grayscale, Scale: 5, Caption: "frame %d/%d", Frames: 9})
	white := 0
	for i := 0; i < len(captioned.Pix); i += 4 {
		if captioned.Pix[i] == 0xff && captioned.Pix[i+1] == 0xff && captioned.Pix[i+2] == 0xff {
			white++
		}
	}
	if white == 0 {
		t.Error("caption drew nothing on an empty frame")
	}
}

func TestPNGSink(t *testing.T) {
	dir := t.TempDir()
	s := NewPNGSink(filepath.Join(dir, "frame-%02d.png"), RasterOptions{Scale: 2})
	fb := testFrame(t)
	for i := 0; i < 2; i++ {
		if err := s.WriteFrame(i, fb); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "frame-01.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("png bounds = %v", b)
	}
}

func TestGIFSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewGIFSink(&buf, 30, RasterOptions{})
	if s.Delay() != 3 {
		t.Errorf("Delay() = %d, want 3", s.Delay())
	}
	fb := testFrame(t)
	for i := 0; i < 3; i++ {
		if err := s.WriteFrame(i, fb); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 3 {
			t.Errorf("frame %d delay %d", i, d)
		}
	}
}

func TestGIFSinkEmpty(t *testing.T) {
	if err := NewGIFSink(&bytes.Buffer{}, 30, RasterOptions{}).Close(); err == nil {
		t.Error("expected an error for a GIF with no frames")
	}
}

func TestMustHex(t *testing.T) {
	r, g, b := mustHex("#3e4989").RGB255()
	if r != 0x3e || g != 0x49 || b != 0x89 {
		t.Errorf("mustHex = %02x%02x%02x", r, g, b)
	}
	defer func() {
		if recover() == nil {
			t.Error("mustHex accepted a malformed color")
		}
	}()
	mustHex("not a color")
}
