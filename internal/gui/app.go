package gui

import (
	"context"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
	"github.com/san-kum/tesseract/internal/hypercube"
)

// ErrWindowInit is returned when raylib could not create the window.
var ErrWindowInit = errors.New("gui: window initialization failed")

func toColor(c config.RGB) rl.Color { return rl.NewColor(c.R, c.G, c.B, 255) }

func vec2(p geom.ScreenPoint) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

// Window is a raylib window acting as both surface and quit source. Clear
// opens a drawing batch and Present closes it.
type Window struct {
	ShowFPS bool
	drawing bool
}

// Open creates a square window of cfg.WindowSize pixels. Frame pacing is
// left to the animation loop, so raylib's own FPS cap stays off.
func Open(cfg config.Config) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowSize), int32(cfg.WindowSize), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowInit
	}
	rl.SetExitKey(rl.KeyEscape)
	return &Window{}, nil
}

func (w *Window) Close() { rl.CloseWindow() }

func (w *Window) Clear(bg config.RGB) {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
	rl.ClearBackground(toColor(bg))
}

func (w *Window) DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, width float64) {
	rl.DrawLineEx(vec2(p1), vec2(p2), float32(width), toColor(c))
}

func (w *Window) Present() {
	if !w.drawing {
		rl.BeginDrawing()
	}
	if w.ShowFPS {
		rl.DrawFPS(10, 10)
	}
	rl.EndDrawing()
	w.drawing = false
}

// PollQuit reports a close request from the window button or Escape.
func (w *Window) PollQuit() bool { return rl.WindowShouldClose() }

// Run opens the window and animates until it is closed or ctx is done.
func Run(ctx context.Context, cfg config.Config, showFPS bool, log *slog.Logger) error {
	model, err := hypercube.New()
	if err != nil {
		return err
	}

	w, err := Open(cfg)
	if err != nil {
		return err
	}
	defer w.Close()
	w.ShowFPS = showFPS

	loop, err := anim.New(cfg, model, w, w, anim.NewSleepPacer())
	if err != nil {
		return err
	}
	loop.SetLogger(log)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
