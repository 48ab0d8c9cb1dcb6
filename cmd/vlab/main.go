package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/vlab/internal/config"
	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/logs"
	"github.com/san-kum/vlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFile    string
	frameRate  int
	themeName  string
	preset     string
	sets       []string

	// per command
	seriesLabel string
	column      int
	format      string
	outPath     string
	atTime      float64
	gifSeconds  float64
	width       int
	height      int
	category    string
	difficulty  string
	sortOrder   string
	asJSON      bool
	outDir      string
	varies      []string
	readingName string
	maximize    bool
	headless    float64

	cfg      *config.Config
	logger   = slog.New(slog.DiscardHandler)
	closeLog = func() error { return nil }
	registry = experiment.NewRegistry()
)

// main wires the vlab commands. With no subcommand the interactive catalog
// runs. Exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "vlab",
		Short:             "virtual STEM lab: parametric experiments in the terminal",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { closeLog() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(registry, cfg.FPS, logger)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate for live views")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list experiments in the catalog",
		Args:  cobra.NoArgs,
		RunE:  listExperiments,
	}
	listCmd.Flags().StringVar(&category, "category", experiment.All, "filter by category")
	listCmd.Flags().StringVar(&difficulty, "difficulty", experiment.All, "filter by difficulty")
	listCmd.Flags().StringVar(&sortOrder, "sort", experiment.SortPopular, "sort order (popular, a-z)")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	infoCmd := &cobra.Command{
		Use:   "info [experiment]",
		Short: "show an experiment's parameters, series and presets",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	seriesCmd := &cobra.Command{
		Use:   "series [experiment]",
		Short: "print generated series as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printSeries,
	}
	paramFlags(seriesCmd)
	seriesCmd.Flags().StringVar(&seriesLabel, "series", "", "series label (default: all)")

	plotCmd := &cobra.Command{
		Use:   "plot [experiment]",
		Short: "plot generated series in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSeries,
	}
	paramFlags(plotCmd)
	plotCmd.Flags().StringVar(&seriesLabel, "series", "", "series label (default: all)")

	exportCmd := &cobra.Command{
		Use:   "export [experiment]",
		Short: "export series data (csv, json) or a chart (png, svg)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportData,
	}
	paramFlags(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv, json, png, svg)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	exportCmd.Flags().StringVar(&seriesLabel, "series", "", "series label (csv: default all, charts: default first)")
	exportCmd.Flags().Float64Var(&atTime, "time", 0, "simulation time for readings (json)")

	frameCmd := &cobra.Command{
		Use:   "frame [experiment]",
		Short: "render the diagram to a PNG, or a GIF with --gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	paramFlags(frameCmd)
	frameCmd.Flags().Float64Var(&atTime, "time", 0, "simulation time in seconds")
	frameCmd.Flags().Float64Var(&gifSeconds, "gif", 0, "render an animation of this many simulated seconds")
	frameCmd.Flags().StringVarP(&outPath, "out", "o", "frame.png", "output file, - for stdout")
	frameCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	frameCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")

	liveCmd := &cobra.Command{
		Use:   "live [experiment]",
		Short: "run an experiment with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	paramFlags(liveCmd)
	liveCmd.Flags().Float64Var(&headless, "headless", 0, "run for this many seconds printing readings instead of the TUI")

	presetsCmd := &cobra.Command{
		Use:   "presets [experiment]",
		Short: "list available presets for an experiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for experiment: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %-12s %s\n", p, formatValues(config.GetPreset(args[0], p)))
			}
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [experiment]",
		Short: "statistics and frequency analysis of a series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeSeries,
	}
	paramFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&seriesLabel, "series", "", "series label (default: first)")
	analyzeCmd.Flags().IntVar(&column, "column", 0, "dependent column index")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scenario file headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "dir", ".", "directory for relative output paths")

	optimizeCmd := &cobra.Command{
		Use:   "optimize [experiment]",
		Short: "grid-search parameters for the best value of a reading",
		Args:  cobra.MaximumNArgs(1),
		RunE:  optimize,
	}
	paramFlags(optimizeCmd)
	optimizeCmd.Flags().StringArrayVar(&varies, "vary", nil, "parameter range, name=min:max:n (repeatable)")
	optimizeCmd.Flags().StringVar(&readingName, "reading", "", "reading label to optimise")
	optimizeCmd.Flags().BoolVar(&maximize, "max", false, "maximise instead of minimise")
	optimizeCmd.MarkFlagRequired("vary")
	optimizeCmd.MarkFlagRequired("reading")

	rootCmd.AddCommand(listCmd, infoCmd, seriesCmd, plotCmd, exportCmd, frameCmd, liveCmd, presetsCmd, analyzeCmd, batchCmd, optimizeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func paramFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a parameter, name=value (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", "apply a named preset")
}

// setup loads the config file and lets explicitly set flags override it.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || cfg.Log.Level == "" {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("fps") || cfg.FPS <= 0 {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = themeName
	}
	if flags.Changed("width") || cfg.Image.Width <= 0 {
		cfg.Image.Width = width
	}
	if flags.Changed("height") || cfg.Image.Height <= 0 {
		cfg.Image.Height = height
	}
	viz.SetTheme(cfg.Theme)

	// full-screen views own the terminal
	var terminal io.Writer = os.Stderr
	if cmd == cmd.Root() || (cmd.Name() == "live" && headless <= 0) {
		terminal = nil
	}
	var err error
	logger, closeLog, err = logs.New(cfg.Log, terminal)
	if err != nil {
		return err
	}
	logger.Debug("config", "experiment", cfg.Experiment, "fps", cfg.FPS, "theme", cfg.Theme)
	return nil
}

// newInstance builds the experiment named by args[0], or the configured one.
// Config params apply only to the configured experiment; the preset and
// --set flags are layered on top, in that order.
func newInstance(args []string) (lab.Instance, error) {
	id := cfg.Experiment
	if len(args) > 0 {
		id = args[0]
	}
	inst, err := registry.New(id, lab.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(registry.IDs(), ", "))
	}

	if id == cfg.Experiment {
		if err := cfg.Apply(inst); err != nil {
			return nil, fmt.Errorf("config params: %w", err)
		}
	}
	if preset != "" {
		values := config.GetPreset(id, preset)
		if values == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(id))
		}
		if err := inst.SetAll(values); err != nil {
			return nil, err
		}
	}
	overrides, err := parseSets(sets)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		stored, err := inst.Set(o.name, o.value)
		if err != nil {
			return nil, err
		}
		if stored != o.value {
			logger.Warn("parameter adjusted to range", "name", o.name, "requested", o.value, "stored", stored)
		}
	}
	return inst, nil
}

type override struct {
	name  string
	value float64
}

func parseSets(raw []string) ([]override, error) {
	out := make([]override, 0, len(raw))
	for _, s := range raw {
		name, val, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		out = append(out, override{name: strings.TrimSpace(name), value: v})
	}
	return out, nil
}
