package analysis

import (
	"math"
	"math/cmplx"
)

type Analysis interface {
	Setup(sweep *Sweep) error
	Execute() error
	GetResults() map[string][]float64
}

// BaseAnalysis collects per-frequency complex results as magnitude and
// phase columns keyed by variable name.
type BaseAnalysis struct {
	results     map[string][]float64
	frequencies []float64
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) Frequencies() []float64 { return a.frequencies }

func (a *BaseAnalysis) StoreACResult(freq float64, solution map[string]complex128) {
	a.results["FREQ"] = append(a.results["FREQ"], freq)

	for name, value := range solution {
		// Magnitude
		magName := name + "_MAG"
		a.results[magName] = append(a.results[magName], cmplx.Abs(value))

		// Phase - degree
		phaseName := name + "_PHASE"
		phase := cmplx.Phase(value) * 180.0 / math.Pi
		a.results[phaseName] = append(a.results[phaseName], phase)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}
