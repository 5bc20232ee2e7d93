package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus/donut"
)

// TerminalSink draws frames into a tcell screen, one colored glyph per cell,
// centred, with a status line at the bottom.
type TerminalSink struct {
	s     tcell.Screen
	ramp  Ramp
	cmap  Colormap
	color bool
}

// NewTerminalSink draws on s, which must already be initialised.
func NewTerminalSink(s tcell.Screen, ramp Ramp, cmap Colormap) *TerminalSink {
	return &TerminalSink{s: s, ramp: ramp, cmap: cmap, color: true}
}

// SetColor switches between colored glyphs and the plain ramp.
func (t *TerminalSink) SetColor(on bool) { t.color = on }

func (t *TerminalSink) WriteFrame(frame int, fb *donut.Framebuffer) error {
	t.s.Clear()
	w, h := t.s.Size()
	x0 := (w - fb.Width()) / 2
	y0 := (h - 1 - fb.Height()) / 2

	for row := 0; row < fb.Height(); row++ {
		y := y0 + fb.Height() - 1 - row
		if y < 0 || y >= h-1 {
			continue
		}
		for col := 0; col < fb.Width(); col++ {
			x := x0 + col
			if x < 0 || x >= w {
				continue
			}
			b, ok := fb.At(row, col)
			if !ok {
				continue
			}
			style := tcell.StyleDefault
			if t.color {
				c := t.cmap.Color(b)
				style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			t.s.SetContent(x, y, t.ramp.Glyph(b), nil, style)
		}
	}

	info := fmt.Sprintf("frame %d | q:quit space:pause c:color", frame)
	drawText(t.s, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
	t.s.Show()
	return nil
}

func (t *TerminalSink) Close() error {
	t.s.Fini()
	return nil
}

// RunTerminal opens the terminal and plays a until the user quits or ctx
// ends.
func RunTerminal(ctx context.Context, a *donut.Animator, ramp Ramp, cmap Colormap) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	t := NewTerminalSink(s, ramp, cmap)
	defer t.Close()
	return t.Play(ctx, a)
}

// Play loops the animation at its frame rate. It returns nil when the user
// presses q, Esc or Ctrl-C, and ctx.Err() when ctx ends first.
func (t *TerminalSink) Play(ctx context.Context, a *donut.Animator) error {
	fb, err := donut.NewFramebuffer(a.Camera())
	if err != nil {
		return err
	}

	quit := make(chan struct{})
	keys := make(chan rune, 8)

	// Input handler
	go func() {
		defer close(quit)
		for {
			ev := t.s.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					if ev.Rune() == 'q' || ev.Rune() == 'Q' {
						return
					}
					select {
					case keys <- ev.Rune():
					default:
					}
				}
			case *tcell.EventResize:
				t.s.Sync()
			}
		}
	}()

	ticker := time.NewTicker(a.FrameDuration())
	defer ticker.Stop()

	frame, paused := 0, false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case k := <-keys:
			switch k {
			case ' ':
				paused = !paused
			case 'c', 'C':
				t.color = !t.color
			}
		case <-ticker.C:
			if err := a.RenderInto(fb, frame); err != nil {
				return err
			}
			if err := t.WriteFrame(frame, fb); err != nil {
				return err
			}
			if !paused {
				frame = (frame + 1) % a.Frames()
			}
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
