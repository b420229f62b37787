package component

import "fmt"

// Parallel joins two elements side by side between terminals 1 and 0.
type Parallel struct {
	Name string
	Z1   Component
	Z2   Component
}

var _ Component = (*Parallel)(nil)

func NewParallel(name string, z1, z2 Component) *Parallel {
	return &Parallel{Name: name, Z1: z1, Z2: z2}
}

func (p *Parallel) GetName() string { return p.Name }
func (p *Parallel) GetType() string { return "parallel" }

func (p *Parallel) Label() string {
	return fmt.Sprintf("%s ∥ %s", p.Z1.Label(), p.Z2.Label())
}

func (p *Parallel) Impedance(freq float64) (complex128, error) {
	z1, err := p.Z1.Impedance(freq)
	if err != nil {
		return 0, err
	}
	z2, err := p.Z2.Impedance(freq)
	if err != nil {
		return 0, err
	}
	return 1 / (1/z1 + 1/z2), nil
}

// VoltageAt returns the voltage with respect to ground at the
// terminal. The whole block sits across the source, so terminal 1 is
// at the source voltage.
func (p *Parallel) VoltageAt(terminal int, vs complex128, freq float64) (complex128, error) {
	if err := checkFrequency(p.Name, freq); err != nil {
		return 0, err
	}
	switch terminal {
	case 1:
		return vs, nil
	case 0:
		return 0, nil
	}
	return 0, fmt.Errorf("%s: no terminal %d", p.Name, terminal)
}
