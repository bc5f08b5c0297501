package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tesseract/internal/config"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestConfigLayering(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(file, []byte("scale: 100\ntarget_fps: 24\n"), 0644))
	out := filepath.Join(dir, "out.yaml")

	require.NoError(t, execute(t, "config", "--preset", "wide", "--config", file, "--fps", "30", "--save", out))

	cfg, err := config.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.ProjectionDistance, "from preset")
	assert.Equal(t, 100.0, cfg.Scale, "from file")
	assert.Equal(t, 30, cfg.TargetFPS, "from flag")
}

func TestUnknownPreset(t *testing.T) {
	assert.ErrorContains(t, execute(t, "config", "--preset", "nope"), "unknown preset")
}

func TestInvalidOverride(t *testing.T) {
	assert.ErrorIs(t, execute(t, "config", "--fps", "0"), config.ErrInvalidConfig)
	assert.ErrorIs(t, execute(t, "config", "--distance", "NaN"), config.ErrInvalidConfig)
}

func TestSnapshotPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, execute(t, "snapshot", "--tick", "3", "--px", "64", "-o", out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestSnapshotSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	require.NoError(t, execute(t, "snapshot", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 32, strings.Count(string(data), "<line "))
}

func TestSnapshotRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, execute(t, "snapshot", "-o", filepath.Join(t.TempDir(), "x.bmp")))
}

func TestRecordGIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "anim.gif")
	require.NoError(t, execute(t, "record", "--frames", "5", "--px", "32", "-o", out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestTraceSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "trace", "--ticks", "32", "--vertex", "3", "--save", "--data", dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "trace_v3_"), entries[0].Name())

	assert.NoError(t, execute(t, "runs", "--data", dir))
}

func TestTraceAll(t *testing.T) {
	assert.NoError(t, execute(t, "trace", "--all", "--ticks", "16"))
}

func TestTraceRejectsNegativeTicks(t *testing.T) {
	assert.ErrorContains(t, execute(t, "trace", "--ticks", "-1"), "ticks must not be negative")
	assert.ErrorContains(t, execute(t, "trace", "--all", "--ticks", "-1"), "ticks must not be negative")
}
