package anim

import (
	"context"
	"errors"
	"log/slog"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
	"github.com/san-kum/tesseract/internal/hypercube"
	"github.com/san-kum/tesseract/internal/projection"
)

// Frame is the transient per-tick geometry. Visible[i] is false where
// vertex i hit a degenerate projection.
type Frame struct {
	Rotated []geom.Vector4
	Points  []geom.ScreenPoint
	Visible []bool
	Edges   []hypercube.Edge
}

// Segments returns the endpoints of every edge with both ends visible.
func (f Frame) Segments() [][2]geom.ScreenPoint {
	segs := make([][2]geom.ScreenPoint, 0, len(f.Edges))
	for _, e := range f.Edges {
		if f.Visible[e.I] && f.Visible[e.J] {
			segs = append(segs, [2]geom.ScreenPoint{f.Points[e.I], f.Points[e.J]})
		}
	}
	return segs
}

type Loop struct {
	cfg      config.Config
	vertices []geom.Vector4
	edges    []hypercube.Edge
	proj     projection.Projector
	angles   *AngleState
	surface  Surface
	input    Input
	pacer    Pacer
	log      *slog.Logger
	state    State
	ticks    int
}

// New validates cfg and builds a Running loop. A nil input never quits and
// a nil pacer never blocks.
func New(cfg config.Config, model *hypercube.Model, surface Surface, input Input, pacer Pacer) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.New("anim: nil hypercube model")
	}
	if surface == nil {
		return nil, errors.New("anim: nil surface")
	}
	if input == nil {
		input = NeverQuit
	}
	if pacer == nil {
		pacer = NoPacer{}
	}
	return &Loop{
		cfg:      cfg,
		vertices: model.Vertices(),
		edges:    model.Edges(),
		proj:     projection.New(cfg.ProjectionDistance, cfg.Scale, cfg.Center()),
		angles:   NewAngleState(cfg.Rotations()),
		surface:  surface,
		input:    input,
		pacer:    pacer,
		log:      slog.New(slog.DiscardHandler),
		state:    Running,
	}, nil
}

func (l *Loop) SetLogger(log *slog.Logger) {
	if log != nil {
		l.log = log
	}
}

func (l *Loop) State() State        { return l.state }
func (l *Loop) Ticks() int          { return l.ticks }
func (l *Loop) Angles() *AngleState { return l.angles }
func (l *Loop) Config() config.Config {
	return l.cfg
}

// Stop moves the loop to Stopped. It cannot be restarted.
func (l *Loop) Stop() {
	if l.state != Stopped {
		l.state = Stopped
		l.log.Info("animation stopped", "ticks", l.ticks)
	}
}

// Project rotates the hypercube by the current angles and projects it.
func (l *Loop) Project() Frame {
	rotated := geom.Apply(l.angles.Transform(), l.vertices)
	pts, ok, err := l.proj.ProjectAll(rotated)
	if err != nil {
		l.log.Debug("skipping degenerate vertices", "tick", l.ticks, "err", err)
	}
	return Frame{Rotated: rotated, Points: pts, Visible: ok, Edges: l.edges}
}

// Draw clears the surface, draws every visible edge and presents.
func (l *Loop) Draw(f Frame) {
	l.surface.Clear(l.cfg.Background)
	for _, s := range f.Segments() {
		l.surface.DrawLine(s[0], s[1], l.cfg.LineColor, l.cfg.LineWidth)
	}
	l.surface.Present()
}

// Step renders one frame, advances the angles and returns the frame it
// drew, without polling or pacing. Hosts whose own event loop drives timing
// call it directly. A stopped loop returns the zero Frame.
func (l *Loop) Step() Frame {
	if l.state == Stopped {
		return Frame{}
	}
	f := l.Project()
	l.Draw(f)
	l.angles.Advance()
	l.ticks++
	return f
}

// Tick polls for quit, steps and paces. It reports whether the loop is
// still running; a quit request skips the rest of the tick.
func (l *Loop) Tick() bool {
	if l.state == Stopped {
		return false
	}
	if l.input.PollQuit() {
		l.Stop()
		return false
	}
	l.Step()
	l.pacer.Tick(l.cfg.TargetFPS)
	return true
}

// Run ticks until quit is requested or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("animation started", "fps", l.cfg.TargetFPS, "window", l.cfg.WindowSize)
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		default:
		}
		if !l.Tick() {
			return nil
		}
	}
}

// RunFrames ticks at most n times; used by headless renderers.
func (l *Loop) RunFrames(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.Tick() {
			return nil
		}
	}
	return nil
}
