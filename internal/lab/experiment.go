package lab

import (
	"log/slog"
	"maps"
	"math"
	"strconv"
	"time"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Difficulty is the catalog difficulty tier of an experiment.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Info is the catalog entry of an experiment.
type Info struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Category    string     `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Popularity  int        `json:"popularity" yaml:"popularity"`
}

// Reading is one numeric readout shown next to the diagram.
type Reading struct {
	Label string
	Value float64
	Unit  string
	// Prec is the number of decimals to display; negative selects %.3e.
	Prec int
}

func (r Reading) Format() string {
	var v string
	switch {
	case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
		v = "n/a"
	case r.Prec < 0:
		v = strconv.FormatFloat(r.Value, 'e', 3, 64)
	default:
		v = strconv.FormatFloat(r.Value, 'f', r.Prec, 64)
	}
	if r.Unit != "" {
		v += " " + r.Unit
	}
	return r.Label + ": " + v
}

// Definition describes one experiment. O is the model output evaluated at a
// single simulation time, consumed by Readout and Draw.
type Definition[O any] interface {
	Info() Info
	Specs() []ParamSpec
	Policy() ResetPolicy
	Evaluate(p ParameterSet, t float64) O
	Sweeps(p ParameterSet) []Sweep
	Readout(p ParameterSet, out O) []Reading
	Draw(s Surface, p ParameterSet, out O)
}

// Constrainer is implemented by definitions with parameters whose bounds
// depend on other parameters. It runs after every edit.
type Constrainer interface {
	Constrain(p *ParameterSet)
}

// Snapshot is the observable state published on every frame.
type Snapshot struct {
	ID    string
	Time  float64
	Phase Phase
}

// Instance is an Experiment with its model output type erased, used by the
// registry and front ends that handle experiments uniformly.
type Instance interface {
	Info() Info
	Params() ParameterSet
	Set(name string, v float64) (float64, error)
	SetAll(values map[string]float64) error
	ResetParams()
	Series() SeriesSet
	Play()
	Pause()
	Toggle()
	Reset()
	Seek(t float64)
	Tick(now time.Time) float64
	Phase() Phase
	Time() float64
	Readout() []Reading
	Draw(s Surface)
	Subscribe(fn func(Snapshot)) (cancel func())
}

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for parameter edits and clock transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Experiment is one live experiment: parameters, cached series, and clock.
type Experiment[O any] struct {
	def    Definition[O]
	params ParameterSet
	series SeriesSet
	clock  *Clock
	logger *slog.Logger

	subs   map[int]func(Snapshot)
	nextID int
}

func New[O any](def Definition[O], opts ...Option) *Experiment[O] {
	o := options{logger: discardLogger}
	for _, opt := range opts {
		opt(&o)
	}
	info := def.Info()
	e := &Experiment[O]{
		def:    def,
		params: NewParameterSet(def.Specs()),
		clock:  NewClock(def.Policy()),
		logger: o.logger.With("experiment", info.ID),
		subs:   make(map[int]func(Snapshot)),
	}
	e.clock.setLogger(e.logger)
	e.constrain()
	e.regenerate()
	return e
}

func (e *Experiment[O]) Info() Info                { return e.def.Info() }
func (e *Experiment[O]) Definition() Definition[O] { return e.def }
func (e *Experiment[O]) Params() ParameterSet      { return e.params.Clone() }
func (e *Experiment[O]) Series() SeriesSet         { return e.series }
func (e *Experiment[O]) Phase() Phase              { return e.clock.Phase() }
func (e *Experiment[O]) Time() float64             { return e.clock.Time() }

// Set applies one parameter edit: clamp, constrain dependents, regenerate
// series, then apply the reset policy. The stored value is returned.
func (e *Experiment[O]) Set(name string, v float64) (float64, error) {
	before := e.params.Get(name)
	stored, err := e.params.Set(name, v)
	if err != nil {
		return stored, err
	}
	e.constrain()
	stored = e.params.Get(name)
	e.logger.Debug("parameter set", "name", name, "requested", v, "stored", stored)
	if stored != before {
		e.changed()
	}
	return stored, nil
}

// SetAll stores every value first, then constrains dependents, regenerates
// series, and applies the reset policy once, so that dependent bounds are
// computed from the final values rather than the intermediate ones. Nothing
// is stored if any name is unknown or any value is not finite.
func (e *Experiment[O]) SetAll(values map[string]float64) error {
	for name, v := range values {
		if !e.params.Has(name) {
			return &ParamError{Name: name, Value: v, Wrapped: ErrUnknownParam}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ParamError{Name: name, Value: v, Wrapped: ErrInvalidValue}
		}
	}
	before := e.params.Values()
	for _, s := range e.params.Specs() {
		if v, ok := values[s.Name]; ok {
			if _, err := e.params.Set(s.Name, v); err != nil {
				return err
			}
		}
	}
	e.constrain()
	after := e.params.Values()
	e.logger.Debug("parameters set", "requested", len(values), "params", e.params.String())
	if !maps.Equal(before, after) {
		e.changed()
	}
	return nil
}

// ResetParams restores defaults.
func (e *Experiment[O]) ResetParams() {
	e.params.Reset()
	e.constrain()
	e.changed()
}

func (e *Experiment[O]) changed() {
	e.regenerate()
	e.clock.ParamChanged()
	e.publish()
}

func (e *Experiment[O]) constrain() {
	if c, ok := e.def.(Constrainer); ok {
		c.Constrain(&e.params)
	}
}

func (e *Experiment[O]) regenerate() {
	e.series = Generate(e.def.Sweeps(e.params))
}

func (e *Experiment[O]) Play() {
	e.clock.Play()
	e.publish()
}

func (e *Experiment[O]) Pause() {
	e.clock.Pause()
	e.publish()
}

func (e *Experiment[O]) Toggle() {
	e.clock.Toggle()
	e.publish()
}

func (e *Experiment[O]) Reset() {
	e.clock.Reset()
	e.publish()
}

func (e *Experiment[O]) Seek(t float64) {
	e.clock.Seek(t)
	e.publish()
}

// Tick advances the clock to now and notifies subscribers when running.
func (e *Experiment[O]) Tick(now time.Time) float64 {
	if !e.clock.Running() {
		return e.clock.Time()
	}
	t := e.clock.Advance(now)
	e.publish()
	return t
}

// Output evaluates the model at the current simulation time.
func (e *Experiment[O]) Output() O {
	return e.def.Evaluate(e.params, e.clock.Time())
}

func (e *Experiment[O]) Readout() []Reading {
	return e.def.Readout(e.params, e.Output())
}

// Draw clears s and renders the diagram at the current simulation time.
func (e *Experiment[O]) Draw(s Surface) {
	s.Clear()
	e.def.Draw(s, e.params, e.Output())
}

// Subscribe registers fn for every published snapshot.
func (e *Experiment[O]) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	return func() { delete(e.subs, id) }
}

func (e *Experiment[O]) Snapshot() Snapshot {
	return Snapshot{ID: e.def.Info().ID, Time: e.clock.Time(), Phase: e.clock.Phase()}
}

func (e *Experiment[O]) publish() {
	if len(e.subs) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, fn := range e.subs {
		fn(snap)
	}
}

var _ Instance = (*Experiment[struct{}])(nil)
