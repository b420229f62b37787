package component

// Probe reads the voltage response at a terminal of a series circuit,
// with a unit source across terminals 1 and 0. Probing terminal 2 of
// an RC chain gives the filter transfer function.
type Probe struct {
	Circuit  *Series
	Terminal int
}

func (p *Probe) GetName() string { return p.Circuit.GetName() }

func (p *Probe) Transfer(freq float64) (complex128, error) {
	return p.Circuit.VoltageAt(p.Terminal, 1, freq)
}
