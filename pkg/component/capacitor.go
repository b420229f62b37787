package component

import (
	"fmt"
	"math"

	"impedance/pkg/util"
)

type Capacitor struct {
	BaseComponent
}

var _ Component = (*Capacitor)(nil)

func NewCapacitor(name string, value float64) (*Capacitor, error) {
	if err := checkValue(name, value, "F"); err != nil {
		return nil, err
	}
	return &Capacitor{BaseComponent{Name: name, Value: value}}, nil
}

func (c *Capacitor) GetType() string { return "C" }

func (c *Capacitor) Label() string {
	return fmt.Sprintf("Capacitor [%s]", util.FormatValueFactor(c.Value, "F"))
}

// Impedance is 1/(jωC) with ω = 2πf.
func (c *Capacitor) Impedance(freq float64) (complex128, error) {
	if err := checkFrequency(c.Name, freq); err != nil {
		return 0, err
	}
	omega := 2 * math.Pi * freq
	return 1 / complex(0, omega*c.Value), nil
}
