package component

import "fmt"

// Component is a two-terminal element with a defined complex impedance
// at every positive frequency. Terminal 1 is the top of the element,
// terminal 0 is ground.
type Component interface {
	GetName() string
	GetType() string
	Label() string
	Impedance(freq float64) (complex128, error)
}

type BaseComponent struct {
	Name  string
	Value float64
}

func (c *BaseComponent) GetName() string   { return c.Name }
func (c *BaseComponent) GetValue() float64 { return c.Value }

func checkValue(name string, value float64, unit string) error {
	if value <= 0 {
		return fmt.Errorf("%s: value must be positive, got %g %s", name, value, unit)
	}
	return nil
}

func checkFrequency(name string, freq float64) error {
	if freq <= 0 {
		return fmt.Errorf("%s: frequency must be positive, got %g Hz", name, freq)
	}
	return nil
}
