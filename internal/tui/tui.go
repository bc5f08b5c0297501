package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
	"github.com/san-kum/tesseract/internal/hypercube"
	"github.com/san-kum/tesseract/internal/viz"
)

const (
	defaultCols     = 60
	defaultRows     = 30
	panelWidth      = 30
	historyCapacity = 120
	// vertex whose depth is plotted in the side panel: (1,1,1,1)
	trackedVertex = hypercube.VertexCount - 1
)

type TickMsg time.Time

// Model is a bubbletea model that drives an animation loop from tick
// messages instead of a blocking pacer.
type Model struct {
	loop     *anim.Loop
	surface  *viz.CanvasSurface
	theme    viz.Theme
	styles   viz.Styles
	fps      int
	paused   bool
	depth    []float64
	last     time.Time
	measured float64
	showHelp bool
}

func NewModel(cfg config.Config) (Model, error) {
	model, err := hypercube.New()
	if err != nil {
		return Model{}, err
	}
	surface := viz.NewCanvasSurface(defaultCols, defaultRows, cfg.WindowSize)
	loop, err := anim.New(cfg, model, surface, nil, nil)
	if err != nil {
		return Model{}, err
	}
	theme := viz.GetTheme(cfg.Theme)
	return Model{
		loop:    loop,
		surface: surface,
		theme:   theme,
		styles:  viz.NewStyles(theme),
		fps:     cfg.TargetFPS,
		depth:   make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Loop() *anim.Loop { return m.loop }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and steps the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.loop.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "t":
			m.theme = viz.NextTheme(m.theme)
			m.styles = viz.NewStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth-6, 10)
		rows := max(msg.Height-2, 5)
		m.surface.Resize(cols, rows)
	case TickMsg:
		if m.loop.State() == anim.Stopped {
			return m, nil
		}
		now := time.Time(msg)
		if !m.last.IsZero() {
			if dt := now.Sub(m.last).Seconds(); dt > 0 {
				m.measured = 1 / dt
			}
		}
		m.last = now
		if !m.paused {
			f := m.loop.Step()
			m.record(f)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record(f anim.Frame) {
	if len(f.Rotated) <= trackedVertex {
		return
	}
	if len(m.depth) == historyCapacity {
		m.depth = m.depth[1:]
	}
	m.depth = append(m.depth, f.Rotated[trackedVertex].W)
}

// View renders the canvas and the status panel side by side.
func (m Model) View() string {
	canvas := m.styles.Canvas.Render(strings.Join(m.surface.Frame(), "\n"))

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	angles := m.loop.Angles()

	var s strings.Builder
	s.WriteString(m.styles.Header.Render("TESSERACT") + "\n")
	s.WriteString(m.styles.Value.Render(status) + "\n\n")
	s.WriteString(m.stat("Tick", fmt.Sprintf("%d", m.loop.Ticks())))
	s.WriteString(m.stat("FPS", fmt.Sprintf("%.0f / %d", m.measured, m.fps)))
	s.WriteString(m.stat("ZW", fmt.Sprintf("%.3f rad", angles.Angle(geom.ZW))))
	s.WriteString(m.stat("XW", fmt.Sprintf("%.3f rad", angles.Angle(geom.XW))))
	s.WriteString(m.stat("Edges", fmt.Sprintf("%d", m.surface.LineCount())))
	s.WriteString(m.stat("Theme", m.theme.Name))
	s.WriteString("\n" + m.styles.Label.Render("w(1,1,1,1)") + "\n")
	s.WriteString(m.styles.Value.Render(viz.SparklineChart(m.depth, panelWidth-6)) + "\n")
	s.WriteString(m.styles.Help.Render("SP:Pause T:Theme\n?:Help Q:Quit"))

	panel := m.styles.Panel.Width(panelWidth).Render(s.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, panel)
	if m.showHelp {
		return helpText + "\n" + view
	}
	return view
}

func (m Model) stat(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n"
}

const helpText = `  Space  pause / resume
  T      cycle colour theme
  ?      toggle this help
  Q/Esc  quit`

// Run shows the animation in the terminal until quit or ctx is done.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	m.loop.SetLogger(log)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
