package physics

// Circuit is a single resistor across a DC source.
type Circuit struct {
	Voltage    float64 // V
	Resistance float64 // Ω
}

func NewCircuit() *Circuit {
	return &Circuit{Voltage: 12, Resistance: 100}
}

func (c *Circuit) Current() float64 { return c.Voltage / c.Resistance }

func (c *Circuit) Power() float64 { return c.Voltage * c.Current() }

// CurrentAt is the current with the source set to v.
func (c *Circuit) CurrentAt(v float64) float64 { return v / c.Resistance }
