package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/vlab/internal/analysis"
	"github.com/san-kum/vlab/internal/config"
	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/export"
	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/render"
	"github.com/san-kum/vlab/internal/scenario"
	"github.com/san-kum/vlab/internal/viz"
	"github.com/spf13/cobra"
)

func listExperiments(cmd *cobra.Command, args []string) error {
	infos := experiment.Filter(registry.List(), experiment.Query{
		Category:   category,
		Difficulty: difficulty,
		Sort:       sortOrder,
	})

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	if len(infos) == 0 {
		fmt.Println("no experiments match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tPOPULARITY")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			info.ID,
			info.Title,
			info.Category,
			info.Difficulty,
			info.Popularity,
		)
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	info := inst.Info()
	fmt.Printf("%s (%s)\n", info.Title, info.ID)
	fmt.Printf("%s\n\n", info.Description)
	fmt.Printf("category: %s  difficulty: %s\n\n", info.Category, info.Difficulty)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tLABEL\tMIN\tMAX\tSTEP\tDEFAULT\tUNIT")
	for _, s := range inst.Params().Specs() {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%s\n",
			s.Name, s.Label, s.Min, s.Max, s.Step, s.Default, s.Unit)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nseries:")
	for _, ser := range inst.Series().All() {
		fmt.Printf("  %-14s %s vs %s, %d points\n",
			ser.Label, strings.Join(ser.YNames, ", "), ser.XName, len(ser.Points))
	}

	fmt.Println("\nreadings:")
	for _, r := range inst.Readout() {
		fmt.Printf("  %s\n", r.Format())
	}

	if presets := config.ListPresets(info.ID); len(presets) > 0 {
		fmt.Printf("\npresets: %s\n", strings.Join(presets, ", "))
	}
	return nil
}

// selectedSeries returns the series chosen by --series, or all of them.
func selectedSeries(inst lab.Instance) ([]lab.Series, error) {
	if seriesLabel == "" {
		all := inst.Series().All()
		if len(all) == 0 {
			return nil, lab.ErrEmptySeries
		}
		return all, nil
	}
	ser, err := scenario.SelectSeries(inst.Series(), seriesLabel)
	if err != nil {
		return nil, err
	}
	return []lab.Series{ser}, nil
}

func printSeries(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	list, err := selectedSeries(inst)
	if err != nil {
		return err
	}

	for i, ser := range list {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%d points)\n", ser.Label, len(ser.Points))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "%s\t%s\t\n", ser.XName, strings.Join(ser.YNames, "\t"))
		for _, p := range ser.Points {
			cols := make([]string, 0, len(p.Y)+1)
			cols = append(cols, strconv.FormatFloat(p.X, 'g', 6, 64))
			for _, y := range p.Y {
				cols = append(cols, strconv.FormatFloat(y, 'g', 6, 64))
			}
			fmt.Fprintf(w, "%s\t\n", strings.Join(cols, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	list, err := selectedSeries(inst)
	if err != nil {
		return err
	}

	info := inst.Info()
	fmt.Printf("experiment: %s\n", info.Title)
	fmt.Printf("params: %s\n\n", inst.Params())

	for _, ser := range list {
		if len(ser.Points) == 0 {
			fmt.Printf("%s: no data\n\n", ser.Label)
			continue
		}
		for col, name := range ser.YNames {
			graph := asciigraph.Plot(ser.Ys(col),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("%s: %s vs %s (%g to %g)",
					ser.Label, name, ser.XName, ser.Points[0].X, ser.Points[len(ser.Points)-1].X)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}
	return nil
}

// openOut returns stdout for "-" and a created file otherwise.
func openOut(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// closeOut closes out and returns the write error, or the close error if
// the write succeeded.
func closeOut(out io.Closer, err error) error {
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func exportData(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	inst.Seek(atTime)

	out, err := openOut(outPath)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		if seriesLabel == "" {
			err = export.WriteCSVSet(out, inst.Series())
			break
		}
		var ser lab.Series
		ser, err = scenario.SelectSeries(inst.Series(), seriesLabel)
		if err == nil {
			err = export.WriteCSV(out, ser)
		}
	case "json":
		err = export.WriteJSON(out, export.NewDocument(inst))
	case export.FormatPNG, export.FormatSVG:
		var ser lab.Series
		ser, err = scenario.SelectSeries(inst.Series(), seriesLabel)
		if err == nil {
			err = export.WriteChart(out, ser, format, export.ChartOptions{
				Title:  inst.Info().Title + ": " + ser.Label,
				Column: -1,
			})
		}
	default:
		err = fmt.Errorf("unknown format: %s (want csv, json, png, svg)", format)
	}
	if err := closeOut(out, err); err != nil {
		return err
	}
	if outPath != "-" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}

	path := outPath
	if gifSeconds > 0 && !cmd.Flags().Changed("out") {
		path = "frame.gif"
	}
	out, err := openOut(path)
	if err != nil {
		return err
	}

	w, h := cfg.Image.Width, cfg.Image.Height
	if gifSeconds > 0 {
		err = render.WriteGIF(out, inst, gifSeconds, min(cfg.FPS, 30), w, h)
	} else {
		err = render.WritePNG(out, inst, atTime, w, h)
	}
	if err := closeOut(out, err); err != nil {
		return err
	}
	if path != "-" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	if headless > 0 {
		return watch(cmd.Context(), os.Stdout, inst, cfg.FPS, headless)
	}
	return viz.RunLive(inst, cfg.FPS, logger)
}

// watch plays inst on a ticker for the given wall-clock seconds, printing the
// published snapshots about four times a second.
func watch(ctx context.Context, out io.Writer, inst lab.Instance, fps int, seconds float64) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(seconds*float64(time.Second)))
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sched := lab.NewTickerScheduler(fps)
	every := max(int(time.Second/4/sched.Interval()), 1)
	frame := 0
	unsubscribe := inst.Subscribe(func(snap lab.Snapshot) {
		frame++
		if frame%every == 0 {
			printReadings(out, snap, inst.Readout())
		}
	})

	inst.Play()
	sched.Start(ctx, func(now time.Time) { inst.Tick(now) })
	<-ctx.Done()
	sched.Stop()
	unsubscribe()

	inst.Pause()
	printReadings(out, lab.Snapshot{ID: inst.Info().ID, Time: inst.Time(), Phase: inst.Phase()}, inst.Readout())
	return nil
}

func printReadings(w io.Writer, snap lab.Snapshot, readings []lab.Reading) {
	parts := []string{fmt.Sprintf("t=%.2fs", snap.Time)}
	for _, r := range readings {
		parts = append(parts, r.Format())
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

func analyzeSeries(cmd *cobra.Command, args []string) error {
	inst, err := newInstance(args)
	if err != nil {
		return err
	}
	ser, err := scenario.SelectSeries(inst.Series(), seriesLabel)
	if err != nil {
		return err
	}
	if column < 0 || column >= len(ser.YNames) {
		return fmt.Errorf("column %d out of range: %s has %v", column, ser.Label, ser.YNames)
	}
	name := ser.YNames[column]

	stats, err := analysis.Summarize(ser, column)
	if err != nil {
		return err
	}
	fmt.Printf("series: %s, column: %s vs %s, %d points\n", ser.Label, name, ser.XName, len(ser.Points))
	fmt.Printf("  min:  %.6g at %s=%.4g\n", stats.Min, ser.XName, stats.ArgMin)
	fmt.Printf("  max:  %.6g at %s=%.4g\n", stats.Max, ser.XName, stats.ArgMax)
	fmt.Printf("  mean: %.6g\n", stats.Mean)

	period, err := analysis.DominantPeriod(ser, column)
	if err != nil {
		fmt.Printf("  dominant period: n/a (%v)\n", err)
	} else {
		fmt.Printf("  dominant period (fft): %.4f %s\n", period, ser.XName)
	}
	if cp := analysis.CrossingPeriod(ser, column); cp > 0 {
		fmt.Printf("  crossing period:       %.4f %s\n", cp, ser.XName)
	}

	ps := analysis.PowerSpectrum(ser.Ys(column))
	if len(ps) > 1 {
		n := min(len(ps), 80)
		graph := asciigraph.Plot(ps[:n],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum ("+name+")"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	if len(ser.YNames) >= 2 {
		other := 1
		if column == 1 {
			other = 0
		}
		if portrait := analysis.Portrait(ser, column, other); portrait != nil {
			fmt.Printf("\nphase portrait: %s vs %s\n", portrait.YName, portrait.XName)
			fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))
		}
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &scenario.Runner{
		Registry: registry,
		Dir:      outDir,
		Width:    cfg.Image.Width,
		Height:   cfg.Image.Height,
		FPS:      min(cfg.FPS, 30),
		Logger:   logger,
	}
	results, err := runner.Run(ctx, sc)
	for _, res := range results {
		fmt.Printf("step %d: %s\n", res.Step, res.Experiment)
		fmt.Printf("  params: %s\n", formatValues(res.Params))
		for _, r := range res.Readings {
			fmt.Printf("  %s\n", r.Format())
		}
		if len(res.Sweep) > 0 {
			printSweep(res.Sweep)
		}
		for _, f := range res.Files {
			fmt.Printf("  wrote %s\n", f)
		}
	}
	return err
}

func printSweep(rows []scenario.SweepResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"  VALUE"}
	for _, r := range rows[0].Readings {
		header = append(header, strings.ToUpper(r.Label))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		cols := []string{"  " + strconv.FormatFloat(row.Value, 'g', 6, 64)}
		for _, r := range row.Readings {
			cols = append(cols, strconv.FormatFloat(r.Value, 'g', 6, 64))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	w.Flush()
}

// formatValues prints a parameter map in sorted key order.
func formatValues(values map[string]float64) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%g", k, values[k]))
	}
	return strings.Join(parts, " ")
}
