// Package storage keeps traced runs on disk, one directory per run holding
// metadata.json and samples.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/tesseract/internal/analysis"
	"github.com/san-kum/tesseract/internal/config"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                 string             `json:"id"`
	Timestamp          time.Time          `json:"timestamp"`
	Vertex             int                `json:"vertex"`
	Ticks              int                `json:"ticks"`
	Skipped            int                `json:"skipped"`
	ProjectionDistance float64            `json:"projection_distance"`
	Scale              float64            `json:"scale"`
	RotationSpeed      float64            `json:"rotation_speed"`
	TargetFPS          int                `json:"target_fps"`
	Metrics            map[string]float64 `json:"metrics"`
}

// Sample is one row of samples.csv.
type Sample struct {
	Tick    int
	X, Y, W float64
}

// Summarize computes the metrics stored with a trace.
func Summarize(tr analysis.TraceResult) map[string]float64 {
	m := make(map[string]float64)
	if len(tr.Depth) == 0 {
		return m
	}
	lo, hi := tr.Depth[0], tr.Depth[0]
	for _, w := range tr.Depth {
		lo, hi = min(lo, w), max(hi, w)
	}
	m["w_min"] = lo
	m["w_max"] = hi
	if bin := analysis.DominantBin(analysis.PowerSpectrum(tr.X())); bin > 0 {
		m["x_period_ticks"] = float64(len(tr.Points)) / float64(bin)
	}
	return m
}

func (s *Store) SaveTrace(cfg config.Config, tr analysis.TraceResult) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("trace_v%d_%d", tr.Vertex, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                 runID,
		Timestamp:          now,
		Vertex:             tr.Vertex,
		Ticks:              len(tr.Points),
		Skipped:            tr.Skipped,
		ProjectionDistance: cfg.ProjectionDistance,
		Scale:              cfg.Scale,
		RotationSpeed:      cfg.RotationSpeed,
		TargetFPS:          cfg.TargetFPS,
		Metrics:            Summarize(tr),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"tick", "x", "y", "w"}); err != nil {
		return "", err
	}
	for i, p := range tr.Points {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(tr.Depth[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		var sm Sample
		var perr error
		sm.Tick, perr = strconv.Atoi(record[0])
		vals := [3]*float64{&sm.X, &sm.Y, &sm.W}
		for j, dst := range vals {
			if perr != nil {
				break
			}
			*dst, perr = strconv.ParseFloat(record[j+1], 64)
		}
		if perr != nil {
			return nil, fmt.Errorf("%s: bad sample row %v: %w", runID, record, perr)
		}
		samples = append(samples, sm)
	}

	return samples, nil
}
