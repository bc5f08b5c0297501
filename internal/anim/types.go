package anim

import (
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

// Surface is a fixed-size raster the loop draws into.
type Surface interface {
	Clear(bg config.RGB)
	DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, width float64)
	Present()
}

type Input interface {
	PollQuit() bool
}

// Pacer blocks until the next tick is due at hz ticks per second.
type Pacer interface {
	Tick(hz int)
}

// State of a Loop. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// InputFunc adapts a func to Input.
type InputFunc func() bool

func (f InputFunc) PollQuit() bool { return f() }

// NeverQuit is an Input for headless runs bounded by a frame count.
var NeverQuit = InputFunc(func() bool { return false })
