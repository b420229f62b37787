package util

import "testing"

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value    float64
		unit     string
		expected string
	}{
		{100, "Ω", "100.000 Ω"},
		{1, "V", "1.000 V"},
		{0.001, "F", "1.000 mF"},
		{1e-6, "F", "1.000 uF"},
		{47e-9, "F", "47.000 nF"},
		{22e-12, "F", "22.000 pF"},
		{1e-15, "s", "1.000e-15 s"},
	}
	for _, tc := range cases {
		if got := FormatValueFactor(tc.value, tc.unit); got != tc.expected {
			t.Errorf("FormatValueFactor(%g, %s): expected %q, got %q",
				tc.value, tc.unit, tc.expected, got)
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		freq     float64
		expected string
	}{
		{0.1, "  0.100 Hz "},
		{100, "100.000 Hz "},
		{1500, "  1.500 kHz"},
		{2.5e6, "  2.500 MHz"},
	}
	for _, tc := range cases {
		if got := FormatFrequency(tc.freq); got != tc.expected {
			t.Errorf("FormatFrequency(%g): expected %q, got %q", tc.freq, tc.expected, got)
		}
	}
}

func TestFormatMagnitudePhase(t *testing.T) {
	got := FormatMagnitudePhase("Z(R1)", 100, 0)
	expected := "Z(R1)=     100<   0.0deg"
	if got != expected {
		t.Errorf("FormatMagnitudePhase: expected %q, got %q", expected, got)
	}

	got = FormatMagnitudePhase("Z(C1)", 1591.5, -90)
	expected = "Z(C1)=1.59e+03< -90.0deg"
	if got != expected {
		t.Errorf("FormatMagnitudePhase: expected %q, got %q", expected, got)
	}
}
