package donut

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// Animator renders the frame sequence. Every frame is a pure function of its
// index and the static configuration.
type Animator struct {
	torus *Torus
	cam   Camera
	anim  AnimationConfig
}

// NewAnimator validates cam and anim. The torus is already validated by
// NewTorus.
func NewAnimator(torus *Torus, cam Camera, anim AnimationConfig) (*Animator, error) {
	if torus == nil {
		return nil, fmt.Errorf("animator: nil torus")
	}
	if err := cam.validate(); err != nil {
		return nil, err
	}
	if err := anim.validate(); err != nil {
		return nil, err
	}
	return &Animator{torus: torus, cam: cam, anim: anim}, nil
}

// New builds the torus and animator described by cfg.
func New(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTorus(cfg.Torus)
	if err != nil {
		return nil, err
	}
	return NewAnimator(t, cfg.Camera, cfg.Animation)
}

func (a *Animator) Frames() int                { return a.anim.Frames }
func (a *Animator) FPS() float64               { return a.anim.FPS }
func (a *Animator) Camera() Camera             { return a.cam }
func (a *Animator) Torus() *Torus              { return a.torus }
func (a *Animator) Animation() AnimationConfig { return a.anim }

// FrameDuration is the display time of one frame.
func (a *Animator) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / a.anim.FPS)
}

// Angles returns the orientation of frame: 2π·frame·n/Frames per axis.
func (a *Animator) Angles(frame int) Orientation {
	turn := func(n float64) float64 {
		return 2 * math.Pi * float64(frame) * n / float64(a.anim.Frames)
	}
	r := a.anim.Rotations
	return Orientation{X: turn(r.X), Y: turn(r.Y), Z: turn(r.Z)}
}

// RenderFrame renders frame into a fresh framebuffer.
func (a *Animator) RenderFrame(frame int) (*Framebuffer, error) {
	fb, err := NewFramebuffer(a.cam)
	if err != nil {
		return nil, err
	}
	if err := a.RenderInto(fb, frame); err != nil {
		return nil, err
	}
	return fb, nil
}

// RenderInto clears fb and renders frame into it.
func (a *Animator) RenderInto(fb *Framebuffer, frame int) error {
	fb.Clear()
	samples, err := a.torus.Draw(a.Angles(frame))
	if err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	stored := fb.ProjectAll(samples)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("frame rendered",
			"frame", frame,
			"samples", len(samples),
			"stored", stored,
			"covered", fb.Covered(),
			"checksum", fb.Checksum(),
		)
	}
	return nil
}

// Run renders frames 0..Frames-1 in order and hands each to fn. A fresh
// framebuffer is used for every frame, so fn may keep it.
func (a *Animator) Run(ctx context.Context, fn func(frame int, fb *Framebuffer) error) error {
	start := time.Now()
	for f := 0; f < a.anim.Frames; f++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		Logger().Debug("rendering", "frame", f, "of", a.anim.Frames)
		fb, err := a.RenderFrame(f)
		if err != nil {
			return err
		}
		if err := fn(f, fb); err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
	}
	Logger().Info("animation complete", "frames", a.anim.Frames, "elapsed", time.Since(start))
	return nil
}

// RenderAll renders every frame with up to workers goroutines and returns
// them in frame order. Each frame owns its framebuffer, so workers never
// share pixels. workers <= 0 means one per frame.
func (a *Animator) RenderAll(ctx context.Context, workers int) ([]*Framebuffer, error) {
	out := make([]*Framebuffer, a.anim.Frames)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for f := range out {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fb, err := a.RenderFrame(f)
			if err != nil {
				return err
			}
			out[f] = fb
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
