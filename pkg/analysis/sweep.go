package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sweep point spacing, same keywords as a SPICE .ac card.
const (
	ScaleDecade = "DEC"
	ScaleOctave = "OCT"
	ScaleLinear = "LIN"
)

type Sweep struct {
	Start  float64 // start frequency (Hz)
	Stop   float64 // stop frequency (Hz)
	Points int
	Scale  string // DEC, OCT or LIN
}

func NewSweep(fStart, fStop float64, nPoints int, scale string) *Sweep {
	return &Sweep{Start: fStart, Stop: fStop, Points: nPoints, Scale: scale}
}

func (s *Sweep) Frequencies() ([]float64, error) {
	if s.Start <= 0 {
		return nil, fmt.Errorf("sweep start frequency must be positive, got %g Hz", s.Start)
	}
	if s.Stop <= s.Start {
		return nil, fmt.Errorf("sweep stop frequency must be above start, got %g Hz", s.Stop)
	}
	if s.Points < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", s.Points)
	}

	freqs := make([]float64, s.Points)
	switch s.Scale {
	case ScaleDecade:
		floats.LogSpan(freqs, s.Start, s.Stop)

	case ScaleOctave:
		logStart := math.Log2(s.Start)
		logStop := math.Log2(s.Stop)
		step := (logStop - logStart) / float64(s.Points-1)
		for i := range freqs {
			freqs[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case ScaleLinear:
		floats.Span(freqs, s.Start, s.Stop)

	default:
		return nil, fmt.Errorf("unknown sweep scale: %s", s.Scale)
	}

	return freqs, nil
}
