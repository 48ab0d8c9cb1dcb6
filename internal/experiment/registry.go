package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
)

// Factory builds a fresh instance of one experiment.
type Factory func(opts ...lab.Option) lab.Instance

type Registry struct {
	order     []string
	infos     map[string]lab.Info
	factories map[string]Factory
}

// NewRegistry returns a registry holding every built-in experiment.
func NewRegistry() *Registry {
	r := &Registry{
		infos:     make(map[string]lab.Info),
		factories: make(map[string]Factory),
	}

	register(r, Pendulum{})
	register(r, EnergyGap{})
	register(r, FreeFall{})
	register(r, Projectile{})
	register(r, Diode{})
	register(r, Circuit{})
	register(r, Titration{})

	return r
}

func register[O any](r *Registry, def lab.Definition[O]) {
	info := def.Info()
	if _, ok := r.factories[info.ID]; !ok {
		r.order = append(r.order, info.ID)
	}
	r.infos[info.ID] = info
	r.factories[info.ID] = func(opts ...lab.Option) lab.Instance {
		return lab.New(def, opts...)
	}
}

// New instantiates the experiment with the given id.
func (r *Registry) New(id string, opts ...lab.Option) (lab.Instance, error) {
	fn, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", lab.ErrUnknownExperiment, id)
	}
	return fn(opts...), nil
}

func (r *Registry) Info(id string) (lab.Info, error) {
	info, ok := r.infos[id]
	if !ok {
		return lab.Info{}, fmt.Errorf("%w: %s", lab.ErrUnknownExperiment, id)
	}
	return info, nil
}

// List returns catalog entries in registration order.
func (r *Registry) List() []lab.Info {
	out := make([]lab.Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.infos[id])
	}
	return out
}

func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
