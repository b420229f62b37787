package component

import (
	"fmt"
	"math"

	"impedance/pkg/util"
)

type Inductor struct {
	BaseComponent
}

var _ Component = (*Inductor)(nil)

func NewInductor(name string, value float64) (*Inductor, error) {
	if err := checkValue(name, value, "H"); err != nil {
		return nil, err
	}
	return &Inductor{BaseComponent{Name: name, Value: value}}, nil
}

func (l *Inductor) GetType() string { return "L" }

func (l *Inductor) Label() string {
	return fmt.Sprintf("Inductor [%s]", util.FormatValueFactor(l.Value, "H"))
}

// Impedance is jωL with ω = 2πf.
func (l *Inductor) Impedance(freq float64) (complex128, error) {
	if err := checkFrequency(l.Name, freq); err != nil {
		return 0, err
	}
	omega := 2 * math.Pi * freq
	return complex(0, omega*l.Value), nil
}
