package analysis

import (
	"fmt"

	"impedance/pkg/component"
)

// ImpedanceSweep evaluates a component's complex impedance over a
// frequency sweep. Results go into Z(name)_MAG and Z(name)_PHASE
// columns alongside FREQ.
type ImpedanceSweep struct {
	BaseAnalysis
	comp component.Component
}

var _ Analysis = (*ImpedanceSweep)(nil)

func NewImpedanceSweep(comp component.Component) *ImpedanceSweep {
	return &ImpedanceSweep{BaseAnalysis: *NewBaseAnalysis(), comp: comp}
}

func (s *ImpedanceSweep) Setup(sweep *Sweep) error {
	freqs, err := sweep.Frequencies()
	if err != nil {
		return fmt.Errorf("impedance sweep setup error: %v", err)
	}
	s.frequencies = freqs
	return nil
}

func (s *ImpedanceSweep) Execute() error {
	if s.frequencies == nil {
		return fmt.Errorf("sweep not set up")
	}

	key := fmt.Sprintf("Z(%s)", s.comp.GetName())
	for _, freq := range s.frequencies {
		z, err := s.comp.Impedance(freq)
		if err != nil {
			return fmt.Errorf("impedance error at f=%g: %v", freq, err)
		}
		s.StoreACResult(freq, map[string]complex128{key: z})
	}
	return nil
}

// Network is anything with a voltage transfer response, such as a
// divider or a probed filter.
type Network interface {
	GetName() string
	Transfer(freq float64) (complex128, error)
}

// ResponseSweep evaluates voltage transfer responses over a frequency
// sweep. Several networks can share one sweep, for comparison charts.
type ResponseSweep struct {
	BaseAnalysis
	networks []Network
}

var _ Analysis = (*ResponseSweep)(nil)

func NewResponseSweep(networks ...Network) *ResponseSweep {
	return &ResponseSweep{BaseAnalysis: *NewBaseAnalysis(), networks: networks}
}

func (s *ResponseSweep) Setup(sweep *Sweep) error {
	freqs, err := sweep.Frequencies()
	if err != nil {
		return fmt.Errorf("response sweep setup error: %v", err)
	}
	s.frequencies = freqs
	return nil
}

func (s *ResponseSweep) Execute() error {
	if s.frequencies == nil {
		return fmt.Errorf("sweep not set up")
	}
	if len(s.networks) == 0 {
		return fmt.Errorf("no networks to sweep")
	}

	for _, freq := range s.frequencies {
		solution := make(map[string]complex128)
		for _, nw := range s.networks {
			v, err := nw.Transfer(freq)
			if err != nil {
				return fmt.Errorf("response error at f=%g: %v", freq, err)
			}
			solution[fmt.Sprintf("V(%s)", nw.GetName())] = v
		}
		s.StoreACResult(freq, solution)
	}
	return nil
}
