package sink

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"torus/donut"
)

// RunWindow shows the animation in a desktop window, one frame per tick at
// the animation's frame rate. It blocks until the window closes or the
// user presses q or Esc.
func RunWindow(a *donut.Animator, opts RasterOptions) error {
	fb, err := donut.NewFramebuffer(a.Camera())
	if err != nil {
		return err
	}
	opts.Frames = a.Frames()
	g := &windowGame{a: a, fb: fb, opts: opts}

	s := opts.scale()
	ebiten.SetWindowTitle("torus")
	ebiten.SetWindowSize(fb.Width()*s*2, fb.Height()*s*2)
	ebiten.SetTPS(max(1, int(math.Round(a.FPS()))))
	return ebiten.RunGame(g)
}

type windowGame struct {
	a     *donut.Animator
	fb    *donut.Framebuffer
	opts  RasterOptions
	frame int
	shown int
	img   *ebiten.Image
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.a.RenderInto(g.fb, g.frame); err != nil {
		return err
	}
	g.shown = g.frame
	g.frame = (g.frame + 1) % g.a.Frames()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	rgba := Render(g.shown, g.fb, g.opts)
	b := rgba.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(rgba.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.opts.scale()
	return g.fb.Width() * s, g.fb.Height() * s
}
