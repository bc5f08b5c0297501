package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tesseract/internal/analysis"
	"github.com/san-kum/tesseract/internal/config"
)

func trace(t *testing.T, vertex, n int) analysis.TraceResult {
	t.Helper()
	tr, err := analysis.Trace(context.Background(), *config.DefaultConfig(), vertex, n)
	require.NoError(t, err)
	return tr
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.SaveTrace(*config.DefaultConfig(), trace(t, 15, 64))
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, 15, meta.Vertex)
	assert.Equal(t, 64, meta.Ticks)
	assert.Equal(t, 1.0, meta.Metrics["w_max"], "w is 1 at tick 0 and only shrinks")

	samples, err := st.LoadSamples(runID)
	require.NoError(t, err)
	require.Len(t, samples, 64)
	assert.Equal(t, Sample{Tick: 0, X: 650, Y: 650, W: 1}, samples[0])
	assert.Equal(t, 63, samples[63].Tick)
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	for _, v := range []int{0, 5} {
		_, err := st.SaveTrace(*config.DefaultConfig(), trace(t, v, 8))
		require.NoError(t, err)
	}
	// stray directory without metadata is ignored
	require.NoError(t, os.Mkdir(filepath.Join(dir, "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 0, runs[0].Vertex)
	assert.Equal(t, 5, runs[1].Vertex)
}

func TestListMissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "absent")).List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadMissingRun(t *testing.T) {
	_, err := New(t.TempDir()).Load("nope")
	assert.Error(t, err)
}
