package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(*config.DefaultConfig())
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "unexpected model type %T", next)
	return nm, cmd
}

func TestTickStepsLoop(t *testing.T) {
	m := newModel(t)
	now := time.Now()

	m, cmd := update(t, m, TickMsg(now))
	assert.NotNil(t, cmd, "next tick should be scheduled")
	m, _ = update(t, m, TickMsg(now.Add(time.Second/60)))

	assert.Equal(t, 2, m.Loop().Ticks())
	require.Len(t, m.depth, 2)
	assert.Equal(t, 1.0, m.depth[0])
	assert.InDelta(t, 60, m.measured, 1)
	assert.Contains(t, m.View(), "TESSERACT")
}

func TestPause(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Zero(t, m.Loop().Ticks(), "paused model stepped")
	assert.Contains(t, m.View(), "PAUSED")
}

func TestQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			m := newModel(t)
			m, cmd := update(t, m, k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, anim.Stopped, m.Loop().State())

			m, cmd = update(t, m, TickMsg(time.Now()))
			assert.Nil(t, cmd, "stopped model must not schedule ticks")
			assert.Zero(t, m.Loop().Ticks())
		})
	}
}

func TestThemeCycle(t *testing.T) {
	m := newModel(t)
	before := m.theme.Name
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.NotEqual(t, before, m.theme.Name)
}

func TestResize(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	c := m.surface.Canvas()
	assert.Equal(t, 120-panelWidth-6, c.Width)
	assert.Equal(t, 38, c.Height)
}
