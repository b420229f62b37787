package component

import (
	"fmt"

	"impedance/pkg/util"
)

type Resistor struct {
	BaseComponent
}

var _ Component = (*Resistor)(nil)

func NewResistor(name string, value float64) (*Resistor, error) {
	if err := checkValue(name, value, "Ω"); err != nil {
		return nil, err
	}
	return &Resistor{BaseComponent{Name: name, Value: value}}, nil
}

func (r *Resistor) GetType() string { return "R" }

func (r *Resistor) Label() string {
	return fmt.Sprintf("Resistor [%s]", util.FormatValueFactor(r.Value, "Ω"))
}

// Impedance of an ideal resistor is frequency independent.
func (r *Resistor) Impedance(freq float64) (complex128, error) {
	if err := checkFrequency(r.Name, freq); err != nil {
		return 0, err
	}
	return complex(r.Value, 0), nil
}
