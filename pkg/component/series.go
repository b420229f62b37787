package component

import "fmt"

// Series joins two elements end to end. Terminal 1 is the free end of
// Z1, terminal 0 the free end of Z2 and terminal 2 the junction
// between them.
type Series struct {
	Name string
	Z1   Component
	Z2   Component
}

var _ Component = (*Series)(nil)

func NewSeries(name string, z1, z2 Component) *Series {
	return &Series{Name: name, Z1: z1, Z2: z2}
}

func (s *Series) GetName() string { return s.Name }
func (s *Series) GetType() string { return "series" }

func (s *Series) Label() string {
	return fmt.Sprintf("%s + %s", s.Z1.Label(), s.Z2.Label())
}

func (s *Series) Impedance(freq float64) (complex128, error) {
	return s.ImpedanceBetween(freq, 1, 0)
}

// ImpedanceBetween returns the impedance seen between two terminals:
// the whole combination (1,0), the lower half (2,0) or the upper half
// (1,2).
func (s *Series) ImpedanceBetween(freq float64, plus, minus int) (complex128, error) {
	z1, err := s.Z1.Impedance(freq)
	if err != nil {
		return 0, err
	}
	z2, err := s.Z2.Impedance(freq)
	if err != nil {
		return 0, err
	}

	switch {
	case plus == 1 && minus == 0:
		return z1 + z2, nil
	case plus == 2 && minus == 0:
		return z2, nil
	case plus == 1 && minus == 2:
		return z1, nil
	}
	return 0, fmt.Errorf("%s: no impedance between terminals %d and %d", s.Name, plus, minus)
}

// VoltageAt returns the voltage with respect to ground at the
// terminal, for a source vs across terminals 1 and 0. With
// I = vs/Ztot, the drop across the sub-impedance is Z*I.
func (s *Series) VoltageAt(terminal int, vs complex128, freq float64) (complex128, error) {
	zc, err := s.ImpedanceBetween(freq, terminal, 0)
	if err != nil {
		return 0, err
	}
	zt, err := s.Impedance(freq)
	if err != nil {
		return 0, err
	}
	return zc * (vs / zt), nil
}
