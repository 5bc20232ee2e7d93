// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"torus/donut"
	"torus/sink"
)

func main() {
	def := donut.DefaultConfig()

	configPath := flag.String("config", "", "JSON configuration file")
	mode := flag.String("mode", "ascii", "Output: ascii, png, gif, live, window or bench")
	out := flag.String("out", "", "Output path (png: may contain %d for the frame; gif: file)")
	width := flag.Int("width", def.Camera.Width, "Framebuffer width")
	height := flag.Int("height", def.Camera.Height, "Framebuffer height")
	focal := flag.Float64("focal", def.Camera.FocalDistance, "Camera focal distance")
	major := flag.Float64("R", def.Torus.MajorRadius, "Torus major radius")
	minor := flag.Float64("r", def.Torus.MinorRadius, "Torus minor radius")
	resA := flag.Int("res-a", def.Torus.ResolutionA, "Samples around the tube")
	resB := flag.Int("res-b", def.Torus.ResolutionB, "Samples around the central axis")
	light := vecFlag(def.Torus.Light)
	flag.Var(&light, "light", "Light direction x,y,z")
	offset := vecFlag(def.Torus.Offset)
	flag.Var(&offset, "offset", "Torus position in camera space x,y,z")
	frames := flag.Int("frames", def.Animation.Frames, "Frames per animation cycle")
	fps := flag.Float64("fps", def.Animation.FPS, "Frames per second")
	rot := vecFlag{def.Animation.Rotations.X, def.Animation.Rotations.Y, def.Animation.Rotations.Z}
	flag.Var(&rot, "rot", "Full turns about x,y,z per cycle")
	still := flag.Int("frame", -1, "Render only this frame (ascii, png)")
	scale := flag.Int("scale", 4, "Pixels per cell for png, gif and window")
	caption := flag.Bool("caption", false, "Draw the frame number on images")
	gray := flag.Bool("gray", false, "Use the grayscale colormap")
	ramp := flag.String("ramp", sink.DefaultRamp, "Glyphs from sparse to dense")
	workers := flag.Int("workers", 0, "Parallel frame workers for gif (0: one per frame)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	donut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := def
	if *configPath != "" {
		c, err := donut.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Camera.Width = *width
		case "height":
			cfg.Camera.Height = *height
		case "focal":
			cfg.Camera.FocalDistance = *focal
		case "R":
			cfg.Torus.MajorRadius = *major
		case "r":
			cfg.Torus.MinorRadius = *minor
		case "res-a":
			cfg.Torus.ResolutionA = *resA
		case "res-b":
			cfg.Torus.ResolutionB = *resB
		case "light":
			cfg.Torus.Light = donut.Vec3(light)
		case "offset":
			cfg.Torus.Offset = donut.Vec3(offset)
		case "frames":
			cfg.Animation.Frames = *frames
		case "fps":
			cfg.Animation.FPS = *fps
		case "rot":
			cfg.Animation.Rotations = donut.Orientation(rot)
		}
	})

	r, err := sink.NewRamp(*ramp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid ramp: %v\n", err)
		os.Exit(1)
	}
	opts := sink.RasterOptions{
		Colormap: sink.Viridis,
		Scale:    *scale,
		Frames:   cfg.Animation.Frames,
	}
	if *gray {
		opts.Colormap = sink.Grayscale
	}
	if *caption {
		opts.Caption = "frame %d/%d"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *mode, cfg, r, opts, *out, *still, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mode string, cfg donut.Config, ramp sink.Ramp,
	opts sink.RasterOptions, out string, still, workers int,
) error {
	if mode == "bench" {
		results, err := donut.BenchmarkRenderer(cfg, []int{32, 64, 128, 256, 512}, 10)
		if err != nil {
			return err
		}
		donut.PrintBenchmarkResults(os.Stdout, results)
		return nil
	}

	a, err := donut.New(cfg)
	if err != nil {
		return err
	}
	donut.Logger().Info("rendering",
		"mode", mode,
		"frames", a.Frames(),
		"samples", a.Torus().Len(),
		"size", fmt.Sprintf("%dx%d", cfg.Camera.Width, cfg.Camera.Height),
	)

	switch mode {
	case "ascii":
		return renderFrames(ctx, a, sink.NewGlyphSink(os.Stdout, ramp), still)

	case "png":
		if out == "" {
			out = "donut-%03d.png"
		}
		return renderFrames(ctx, a, sink.NewPNGSink(out, opts), still)

	case "gif":
		if out == "" {
			out = "donut.gif"
		}
		return writeGIF(ctx, a, out, opts, workers)

	case "live":
		return sink.RunTerminal(ctx, a, ramp, opts.Colormap)

	case "window":
		return sink.RunWindow(a, opts)
	}
	return fmt.Errorf("unknown mode %q", mode)
}

// renderFrames sends one frame, or the whole cycle when frame < 0, to s.
func renderFrames(ctx context.Context, a *donut.Animator, s sink.Sink, frame int) error {
	if frame >= 0 {
		fb, err := a.RenderFrame(frame)
		if err != nil {
			return err
		}
		if err := s.WriteFrame(frame, fb); err != nil {
			return err
		}
		return s.Close()
	}
	if err := a.Run(ctx, sink.Func(s)); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

func writeGIF(ctx context.Context, a *donut.Animator, path string, opts sink.RasterOptions, workers int) error {
	fbs, err := a.RenderAll(ctx, workers)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	g := sink.NewGIFSink(f, a.FPS(), opts)
	for i, fb := range fbs {
		if err := g.WriteFrame(i, fb); err != nil {
			f.Close()
			return err
		}
	}
	if err := g.Close(); err != nil {
		f.Close()
		return err
	}
	fmt.Printf("Wrote %s (%d frames)\n", path, g.Len())
	return f.Close()
}

// vecFlag parses "x,y,z".
type vecFlag donut.Vec3

func (v *vecFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func (v *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		xyz[i] = f
	}
	*v = vecFlag{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}
