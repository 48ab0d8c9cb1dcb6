// Package scenario runs scripted batches of experiments without a terminal.
package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/san-kum/vlab/internal/config"
	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/export"
	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	OutputCSV   = "csv"
	OutputJSON  = "json"
	OutputPNG   = "png"
	OutputSVG   = "svg"
	OutputFrame = "frame"
	OutputGIF   = "gif"
)

// Scenario is a named list of steps loaded from YAML.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step configures one experiment, positions its clock at Time and writes
// the listed outputs.
type Step struct {
	Experiment string             `yaml:"experiment"`
	Preset     string             `yaml:"preset,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty"`
	Time       float64            `yaml:"time,omitempty"`
	Vary       *Vary              `yaml:"vary,omitempty"`
	Outputs    []Output           `yaml:"outputs,omitempty"`
}

type Output struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
	// Series selects one series by label; empty means all for csv and the
	// first one for charts.
	Series string `yaml:"series,omitempty"`
	// Duration of a gif in simulated seconds.
	Duration float64 `yaml:"duration,omitempty"`
}

// Result records what a step produced.
type Result struct {
	Step       int
	Experiment string
	Params     map[string]float64
	Readings   []lab.Reading
	Files      []string
	Sweep      []SweepResult
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	return &sc, nil
}

// Runner executes scenarios against a registry. Output paths are resolved
// against Dir.
type Runner struct {
	Registry *experiment.Registry
	Dir      string
	Width    int
	Height   int
	FPS      int
	Logger   *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Run executes every step in order. Results for the steps completed before
// an error are returned with it.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]Result, error) {
	results := make([]Result, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r.logger().Info("scenario step", "scenario", sc.Name, "step", i+1, "of", len(sc.Steps), "experiment", step.Experiment)
		res, err := r.runStep(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Step = i + 1
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runStep(step Step) (Result, error) {
	inst, err := r.Registry.New(step.Experiment, lab.WithLogger(r.logger()))
	if err != nil {
		return Result{}, err
	}
	if step.Preset != "" {
		preset := config.GetPreset(step.Experiment, step.Preset)
		if preset == nil {
			return Result{}, fmt.Errorf("no preset %q for %s", step.Preset, step.Experiment)
		}
		if err := inst.SetAll(preset); err != nil {
			return Result{}, err
		}
	}
	if err := inst.SetAll(step.Params); err != nil {
		return Result{}, err
	}

	res := Result{Experiment: step.Experiment}
	if step.Vary != nil {
		res.Sweep, err = RunSweep(inst, *step.Vary, step.Time)
		if err != nil {
			return Result{}, err
		}
	}

	inst.Seek(step.Time)
	res.Params = inst.Params().Values()
	res.Readings = inst.Readout()

	for _, out := range step.Outputs {
		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.Dir, path)
		}
		if err := r.writeOutput(inst, step.Time, out, path); err != nil {
			return Result{}, fmt.Errorf("%s output %s: %w", out.Format, out.Path, err)
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

func (r *Runner) writeOutput(inst lab.Instance, t float64, out Output, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.encode(f, inst, t, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Runner) encode(w io.Writer, inst lab.Instance, t float64, out Output) error {
	inst.Seek(t)
	width, height := r.Width, r.Height
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWidth, config.DefaultHeight
	}

	switch out.Format {
	case OutputCSV:
		if out.Series == "" {
			return export.WriteCSVSet(w, inst.Series())
		}
		ser, err := SelectSeries(inst.Series(), out.Series)
		if err != nil {
			return err
		}
		return export.WriteCSV(w, ser)
	case OutputJSON:
		return export.WriteJSON(w, export.NewDocument(inst))
	case OutputPNG, OutputSVG:
		ser, err := SelectSeries(inst.Series(), out.Series)
		if err != nil {
			return err
		}
		opts := export.ChartOptions{Title: inst.Info().Title + ": " + ser.Label, Column: -1}
		return export.WriteChart(w, ser, out.Format, opts)
	case OutputFrame:
		return render.WritePNG(w, inst, t, width, height)
	case OutputGIF:
		d := out.Duration
		if d <= 0 {
			d = 5
		}
		return render.WriteGIF(w, inst, d, r.FPS, width, height)
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}

// SelectSeries returns the series with the given label, or the first series
// when label is empty.
func SelectSeries(set lab.SeriesSet, label string) (lab.Series, error) {
	if set.Len() == 0 {
		return lab.Series{}, lab.ErrEmptySeries
	}
	if label == "" {
		return set.All()[0], nil
	}
	ser, ok := set.Get(label)
	if !ok {
		return lab.Series{}, fmt.Errorf("series %q not found (have %v)", label, set.Labels())
	}
	return ser, nil
}
