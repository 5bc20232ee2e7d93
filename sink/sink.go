// Package sink turns completed framebuffers into glyph text, images,
// animations and live views.
package sink

import "torus/donut"

// Sink consumes completed framebuffers in frame order. A sink must not
// modify the framebuffer it is given.
type Sink interface {
	WriteFrame(frame int, fb *donut.Framebuffer) error
	Close() error
}

// Func adapts a Sink to the callback taken by donut.Animator.Run.
func Func(s Sink) func(int, *donut.Framebuffer) error {
	return s.WriteFrame
}
