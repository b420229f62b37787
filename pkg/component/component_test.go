package component

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b complex128) bool {
	return cmplx.Abs(a-b) <= tol*math.Max(1, cmplx.Abs(b))
}

func TestResistorImpedance(t *testing.T) {
	r, err := NewResistor("R1", 100)
	if err != nil {
		t.Fatalf("NewResistor failed: %v", err)
	}

	for _, freq := range []float64{0.1, 200, 1e3, 1e6} {
		z, err := r.Impedance(freq)
		if err != nil {
			t.Fatalf("Impedance at %g Hz failed: %v", freq, err)
		}
		if !almostEqual(z, 100) {
			t.Errorf("Resistor impedance at %g Hz: expected 100, got %v", freq, z)
		}
	}
}

func TestCapacitorImpedance(t *testing.T) {
	c, err := NewCapacitor("C1", 1e-6)
	if err != nil {
		t.Fatalf("NewCapacitor failed: %v", err)
	}

	freq := 200.0
	z, err := c.Impedance(freq)
	if err != nil {
		t.Fatalf("Impedance failed: %v", err)
	}

	expected := 1 / complex(0, 2*math.Pi*freq*1e-6)
	if !almostEqual(z, expected) {
		t.Errorf("Capacitor impedance: expected %v, got %v", expected, z)
	}
	if real(z) != 0 || imag(z) >= 0 {
		t.Errorf("Capacitor impedance should be purely negative imaginary, got %v", z)
	}
	expectedMag := 1 / (2 * math.Pi * freq * 1e-6)
	if math.Abs(cmplx.Abs(z)-expectedMag) > tol*expectedMag {
		t.Errorf("Capacitor magnitude: expected %g, got %g", expectedMag, cmplx.Abs(z))
	}
}

func TestInductorImpedance(t *testing.T) {
	l, err := NewInductor("L1", 1e-3)
	if err != nil {
		t.Fatalf("NewInductor failed: %v", err)
	}

	freq := 200.0
	z, err := l.Impedance(freq)
	if err != nil {
		t.Fatalf("Impedance failed: %v", err)
	}

	expected := complex(0, 2*math.Pi*freq*1e-3)
	if !almostEqual(z, expected) {
		t.Errorf("Inductor impedance: expected %v, got %v", expected, z)
	}
}

func TestInvalidComponentValues(t *testing.T) {
	if _, err := NewResistor("R1", 0); err == nil {
		t.Error("NewResistor accepted zero value")
	}
	if _, err := NewResistor("R1", -100); err == nil {
		t.Error("NewResistor accepted negative value")
	}
	if _, err := NewCapacitor("C1", 0); err == nil {
		t.Error("NewCapacitor accepted zero value")
	}
	if _, err := NewInductor("L1", -1e-3); err == nil {
		t.Error("NewInductor accepted negative value")
	}
}

func TestInvalidFrequency(t *testing.T) {
	r, _ := NewResistor("R1", 100)
	c, _ := NewCapacitor("C1", 1e-6)
	l, _ := NewInductor("L1", 1e-3)

	for _, comp := range []Component{r, c, l} {
		if _, err := comp.Impedance(0); err == nil {
			t.Errorf("%s accepted zero frequency", comp.GetName())
		}
		if _, err := comp.Impedance(-10); err == nil {
			t.Errorf("%s accepted negative frequency", comp.GetName())
		}
	}
}

func TestSeriesImpedance(t *testing.T) {
	r1, _ := NewResistor("R1", 100)
	r2, _ := NewResistor("R2", 200)
	series := NewSeries("X1", r1, r2)

	z, err := series.Impedance(1e3)
	if err != nil {
		t.Fatalf("Impedance failed: %v", err)
	}
	if !almostEqual(z, 300) {
		t.Errorf("Series impedance: expected 300, got %v", z)
	}

	// Sub-impedances between terminal pairs
	z20, err := series.ImpedanceBetween(1e3, 2, 0)
	if err != nil {
		t.Fatalf("ImpedanceBetween(2,0) failed: %v", err)
	}
	if !almostEqual(z20, 200) {
		t.Errorf("Impedance between terminals 2 and 0: expected 200, got %v", z20)
	}
	z12, err := series.ImpedanceBetween(1e3, 1, 2)
	if err != nil {
		t.Fatalf("ImpedanceBetween(1,2) failed: %v", err)
	}
	if !almostEqual(z12, 100) {
		t.Errorf("Impedance between terminals 1 and 2: expected 100, got %v", z12)
	}

	if _, err := series.ImpedanceBetween(1e3, 2, 1); err == nil {
		t.Error("ImpedanceBetween accepted unsupported terminal pair (2,1)")
	}
}

func TestSeriesMatchesSum(t *testing.T) {
	r, _ := NewResistor("R1", 10e3)
	c, _ := NewCapacitor("C1", 1e-6)
	series := NewSeries("X1", r, c)

	for _, freq := range []float64{0.1, 10, 1e3, 1e6} {
		zr, _ := r.Impedance(freq)
		zc, _ := c.Impedance(freq)
		z, err := series.Impedance(freq)
		if err != nil {
			t.Fatalf("Impedance at %g Hz failed: %v", freq, err)
		}
		if !almostEqual(z, zr+zc) {
			t.Errorf("Series at %g Hz: expected %v, got %v", freq, zr+zc, z)
		}
	}
}

func TestParallelImpedance(t *testing.T) {
	r1, _ := NewResistor("R1", 100)
	r2, _ := NewResistor("R2", 200)
	parallel := NewParallel("X1", r1, r2)

	z, err := parallel.Impedance(1e3)
	if err != nil {
		t.Fatalf("Impedance failed: %v", err)
	}
	if !almostEqual(z, complex(200.0/3.0, 0)) {
		t.Errorf("Parallel impedance: expected %g, got %v", 200.0/3.0, z)
	}
}

func TestParallelMatchesReciprocalSum(t *testing.T) {
	r, _ := NewResistor("R1", 10e3)
	c, _ := NewCapacitor("C1", 1e-6)
	parallel := NewParallel("X1", r, c)

	for _, freq := range []float64{0.1, 10, 1e3, 1e6} {
		zr, _ := r.Impedance(freq)
		zc, _ := c.Impedance(freq)
		z, err := parallel.Impedance(freq)
		if err != nil {
			t.Fatalf("Impedance at %g Hz failed: %v", freq, err)
		}
		expected := 1 / (1/zr + 1/zc)
		if !almostEqual(z, expected) {
			t.Errorf("Parallel at %g Hz: expected %v, got %v", freq, expected, z)
		}
	}
}

func TestSeriesVoltageAt(t *testing.T) {
	r1, _ := NewResistor("R1", 100)
	r2, _ := NewResistor("R2", 200)
	series := NewSeries("X1", r1, r2)

	v, err := series.VoltageAt(2, 1, 1e3)
	if err != nil {
		t.Fatalf("VoltageAt failed: %v", err)
	}
	if !almostEqual(v, complex(200.0/300.0, 0)) {
		t.Errorf("Voltage at terminal 2: expected %g, got %v", 200.0/300.0, v)
	}

	v, err = series.VoltageAt(1, 1, 1e3)
	if err != nil {
		t.Fatalf("VoltageAt failed: %v", err)
	}
	if !almostEqual(v, 1) {
		t.Errorf("Voltage at terminal 1: expected 1, got %v", v)
	}
}

func TestParallelVoltageAt(t *testing.T) {
	r1, _ := NewResistor("R1", 100)
	r2, _ := NewResistor("R2", 200)
	parallel := NewParallel("X1", r1, r2)

	v, err := parallel.VoltageAt(1, 1, 1e3)
	if err != nil {
		t.Fatalf("VoltageAt failed: %v", err)
	}
	if !almostEqual(v, 1) {
		t.Errorf("Voltage at terminal 1: expected 1, got %v", v)
	}

	if _, err := parallel.VoltageAt(2, 1, 1e3); err == nil {
		t.Error("Parallel accepted terminal 2")
	}
}

func TestDividerTransfer(t *testing.T) {
	r1, _ := NewResistor("R1", 100)
	r2, _ := NewResistor("R2", 200)
	div := NewDivider("D1", r1, r2)

	v, err := div.Transfer(1e3)
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if !almostEqual(v, complex(100.0/300.0, 0)) {
		t.Errorf("Divider transfer: expected %g, got %v", 100.0/300.0, v)
	}
}

func TestLabels(t *testing.T) {
	r, _ := NewResistor("R1", 100)
	c, _ := NewCapacitor("C1", 1e-6)
	l, _ := NewInductor("L1", 1e-3)

	cases := []struct {
		comp     Component
		expected string
	}{
		{r, "Resistor [100.000 Ω]"},
		{c, "Capacitor [1.000 uF]"},
		{l, "Inductor [1.000 mH]"},
	}
	for _, tc := range cases {
		if got := tc.comp.Label(); got != tc.expected {
			t.Errorf("Label: expected %q, got %q", tc.expected, got)
		}
	}
}
