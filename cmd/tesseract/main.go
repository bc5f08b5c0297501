package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/tesseract/internal/analysis"
	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/export"
	"github.com/san-kum/tesseract/internal/gui"
	"github.com/san-kum/tesseract/internal/hypercube"
	"github.com/san-kum/tesseract/internal/raster"
	"github.com/san-kum/tesseract/internal/storage"
	"github.com/san-kum/tesseract/internal/term"
	"github.com/san-kum/tesseract/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	// overrides
	windowSize int
	distance   float64
	scale      float64
	speed      float64
	fps        int
	lineWidth  float64
	theme      string
	// gui
	showFPS bool
	// record
	frames    int
	recordOut string
	recordPx  int
	// snapshot
	atTick  int
	snapOut string
	snapPx  int
	// trace
	vertex    int
	ticks     int
	spectrum  bool
	svgFile   string
	saveTrace bool
	allVerts  bool
	// config
	savePath string
)

// main opens the window when no subcommand is given. It exits with status
// 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tesseract",
		Short:        "rotating 4D hypercube",
		RunE:         runGUI,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".tesseract", "data directory for saved traces")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&windowSize, "size", config.DefaultWindowSize, "window size in pixels")
	pf.Float64Var(&distance, "distance", config.DefaultProjectionDistance, "projection distance")
	pf.Float64Var(&scale, "scale", config.DefaultScale, "pixels per projected unit")
	pf.Float64Var(&speed, "speed", config.DefaultRotationSpeed, "ZW radians per frame (XW turns at half)")
	pf.IntVar(&fps, "fps", config.DefaultTargetFPS, "target frame rate")
	pf.Float64Var(&lineWidth, "line-width", config.DefaultLineWidth, "edge width in pixels")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal colour theme")
	rootCmd.Flags().BoolVar(&showFPS, "show-fps", false, "draw the frame rate counter")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window (default)",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&showFPS, "show-fps", false, "draw the frame rate counter")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal with a status panel",
		RunE:  runTUI,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "animate full-screen in the terminal",
		RunE:  runTerm,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames headlessly to an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 240, "frames to record")
	recordCmd.Flags().StringVarP(&recordOut, "out", "o", "tesseract.gif", "output file")
	recordCmd.Flags().IntVar(&recordPx, "px", 400, "output image size in pixels")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG or PNG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&atTick, "tick", 0, "frame to capture")
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "tesseract.svg", "output file (.svg or .png)")
	snapshotCmd.Flags().IntVar(&snapPx, "px", 0, "PNG size in pixels (default window size)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "follow one vertex and plot its motion",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&vertex, "vertex", hypercube.VertexCount-1, "vertex index")
	traceCmd.Flags().IntVar(&ticks, "ticks", 1024, "frames to sample")
	traceCmd.Flags().BoolVar(&spectrum, "spectrum", false, "plot the power spectrum of x")
	traceCmd.Flags().StringVar(&svgFile, "svg", "", "write the screen path as SVG")
	traceCmd.Flags().BoolVar(&saveTrace, "save", false, "store the trace in the data directory")
	traceCmd.Flags().BoolVar(&allVerts, "all", false, "summarise every vertex instead of plotting one")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved traces",
		RunE:  listRuns,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  runConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write it to a yaml file instead")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, termCmd, recordCmd, snapshotCmd, traceCmd, runsCmd, configCmd, presetsCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.WindowSize = windowSize
	}
	if flags.Changed("distance") {
		cfg.ProjectionDistance = distance
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("speed") {
		cfg.RotationSpeed = speed
	}
	if flags.Changed("fps") {
		cfg.TargetFPS = fps
	}
	if flags.Changed("line-width") {
		cfg.LineWidth = lineWidth
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()
	return gui.Run(ctx, *cfg, showFPS, newLogger())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()
	return tui.Run(ctx, *cfg, newLogger())
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()
	return term.Run(ctx, *cfg, newLogger())
}

// headless runs n frames onto surface without pacing.
func headless(ctx context.Context, cfg *config.Config, surface anim.Surface, n int) error {
	model, err := hypercube.New()
	if err != nil {
		return err
	}
	loop, err := anim.New(*cfg, model, surface, nil, anim.NoPacer{})
	if err != nil {
		return err
	}
	loop.SetLogger(newLogger())
	return loop.RunFrames(ctx, n)
}

func runRecord(cmd *cobra.Command, args []string) error {
	if frames <= 0 || recordPx <= 0 {
		return fmt.Errorf("frames and px must be positive")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	surface := raster.New(recordPx, cfg.WindowSize, cfg.Background, cfg.LineColor)
	surface.Record(true)
	if err := headless(ctx, cfg, surface, frames); err != nil {
		return err
	}

	f, err := os.Create(recordOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := surface.WriteGIF(f, cfg.TargetFPS); err != nil {
		return err
	}
	fmt.Printf("recorded %d frames to %s\n", len(surface.Frames()), recordOut)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if atTick < 0 {
		return fmt.Errorf("tick must not be negative")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(snapOut)); ext {
	case ".svg":
		surface := export.NewSVGSurface(cfg.WindowSize)
		if err := headless(ctx, cfg, surface, atTick+1); err != nil {
			return err
		}
		data = []byte(surface.SVG())
	case ".png":
		size := snapPx
		if size <= 0 {
			size = cfg.WindowSize
		}
		surface := raster.New(size, cfg.WindowSize, cfg.Background, cfg.LineColor)
		if err := headless(ctx, cfg, surface, atTick+1); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := surface.WritePNG(&buf); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported snapshot format %q (use .svg or .png)", ext)
	}

	if err := os.WriteFile(snapOut, data, 0644); err != nil {
		return err
	}
	fmt.Printf("frame %d written to %s\n", atTick, snapOut)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	if allVerts {
		return traceAll(ctx, cfg)
	}

	tr, err := analysis.Trace(ctx, *cfg, vertex, ticks)
	if err != nil {
		return err
	}

	fmt.Printf("vertex %d over %d frames (%d degenerate)\n\n", tr.Vertex, len(tr.Points), tr.Skipped)
	for _, s := range []struct {
		data    []float64
		caption string
	}{
		{tr.X(), "screen x"},
		{tr.Y(), "screen y"},
		{tr.Depth, "rotated w"},
	} {
		if len(s.data) == 0 {
			continue
		}
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if spectrum {
		ps := analysis.PowerSpectrum(tr.X())
		if len(ps) > 1 {
			plotData := ps
			if len(plotData) > 80 {
				plotData = plotData[:80]
			}
			graph := asciigraph.Plot(plotData,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption("power spectrum (screen x)"),
			)
			fmt.Println(graph)
			if bin := analysis.DominantBin(ps); bin > 0 {
				period := float64(len(tr.Points)) / float64(bin)
				fmt.Printf("\ndominant bin %d, period ~%.0f frames (%.1fs at %d fps)\n",
					bin, period, period/float64(cfg.TargetFPS), cfg.TargetFPS)
			}
		}
	}

	if svgFile != "" {
		svg := export.TraceToSVG(tr.Points, cfg.WindowSize, cfg.WindowSize, cfg.Background, cfg.LineColor.Hex())
		if svg == "" {
			return errors.New("trace too short for SVG")
		}
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("path written to %s\n", svgFile)
	}

	if saveTrace {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveTrace(*cfg, tr)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", runID)
	}
	return nil
}

func traceAll(ctx context.Context, cfg *config.Config) error {
	results, err := analysis.TraceAll(ctx, *cfg, ticks)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERTEX\tSKIPPED\tW MIN\tW MAX\tX PERIOD")
	for _, tr := range results {
		m := storage.Summarize(tr)
		period := "-"
		if p, ok := m["x_period_ticks"]; ok {
			period = fmt.Sprintf("%.0f", p)
		}
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%.3f\t%s\n", tr.Vertex, tr.Skipped, m["w_min"], m["w_max"], period)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved traces")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERTEX\tTICKS\tSPEED\tW RANGE\tX PERIOD")
	for _, r := range runs {
		period := "-"
		if p, ok := r.Metrics["x_period_ticks"]; ok {
			period = fmt.Sprintf("%.0f", p)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%g\t[%.3f, %.3f]\t%s\n",
			r.ID, r.Vertex, r.Ticks, r.RotationSpeed, r.Metrics["w_min"], r.Metrics["w_max"], period)
	}
	return w.Flush()
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", savePath)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDISTANCE\tSCALE\tSPEED\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\t%s\n", name, p.WindowSize, p.ProjectionDistance, p.Scale, p.RotationSpeed, p.Theme)
	}
	return w.Flush()
}
