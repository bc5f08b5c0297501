// Package term draws the tesseract on a tcell screen. Unlike the tui
// package it hands control to the animation loop, which polls the screen
// for quit keys between frames.
package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
	"github.com/san-kum/tesseract/internal/hypercube"
	"github.com/san-kum/tesseract/internal/viz"
)

// rows reserved below the canvas for the status line
const statusRows = 1

func rgb(c config.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Screen adapts a tcell.Screen to the loop's Surface and Input.
type Screen struct {
	s      tcell.Screen
	canvas *viz.CanvasSurface
	title  string
	frames int
}

func NewScreen(s tcell.Screen, logicalSize int, title string) *Screen {
	w, h := s.Size()
	return &Screen{
		s:      s,
		canvas: viz.NewCanvasSurface(max(w, 1), max(h-statusRows, 1), logicalSize),
		title:  title,
	}
}

func (t *Screen) Clear(bg config.RGB) { t.canvas.Clear(bg) }

func (t *Screen) DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, width float64) {
	t.canvas.DrawLine(p1, p2, c, width)
}

// Present copies the Braille rows to the screen and shows them.
func (t *Screen) Present() {
	t.canvas.Present()
	t.frames++

	bg, fg := t.canvas.Colors()
	style := tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(fg))
	t.s.SetStyle(style)
	t.s.Clear()
	for y, row := range t.canvas.Frame() {
		x := 0
		for _, r := range row {
			t.s.SetContent(x, y, r, nil, style)
			x++
		}
	}

	_, h := t.s.Size()
	info := fmt.Sprintf(" %s | frame %d | edges %d | q/esc quit", t.title, t.frames, t.canvas.LineCount())
	drawText(t.s, 0, h-1, style.Foreground(tcell.ColorDarkGray), info)
	t.s.Show()
}

// PollQuit drains pending events without blocking. Resizes are applied to
// the canvas; Escape, Ctrl-C and q request quit.
func (t *Screen) PollQuit() bool {
	for t.s.HasPendingEvent() {
		switch ev := t.s.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return true
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return true
				}
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.canvas.Resize(max(w, 1), max(h-statusRows, 1))
			t.s.Sync()
		case nil:
			return true
		}
	}
	return false
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run takes over the terminal and animates until quit or ctx is done.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	return run(ctx, s, cfg, anim.NewSleepPacer(), log)
}

func run(ctx context.Context, s tcell.Screen, cfg config.Config, pacer anim.Pacer, log *slog.Logger) error {
	model, err := hypercube.New()
	if err != nil {
		return err
	}
	screen := NewScreen(s, cfg.WindowSize, cfg.Title)
	loop, err := anim.New(cfg, model, screen, screen, pacer)
	if err != nil {
		return err
	}
	loop.SetLogger(log)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
