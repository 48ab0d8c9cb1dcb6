package lab

import "errors"

var (
	// ErrUnknownParam indicates a parameter name not declared by the experiment.
	ErrUnknownParam = errors.New("lab: unknown parameter")

	// ErrInvalidValue indicates a non-finite parameter value.
	ErrInvalidValue = errors.New("lab: invalid parameter value (NaN or Inf)")

	// ErrUnknownExperiment indicates an experiment id missing from the registry.
	ErrUnknownExperiment = errors.New("lab: unknown experiment")

	// ErrEmptySeries indicates a series with no plottable points.
	ErrEmptySeries = errors.New("lab: empty series")
)

// ParamError wraps a parameter error with the offending name.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Wrapped.Error() + ": " + e.Name
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
