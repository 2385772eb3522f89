package mathutil

import "testing"

func TestIsZero(t *testing.T) {
	if !IsZero(0.001) {
		t.Error("IsZero(0.001) = false, expected true")
	}
	if !IsZero(-0.001) {
		t.Error("IsZero(-0.001) = false, expected true")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.00, 100.005, 0.01) {
		t.Error("WithinTolerance(100.00, 100.005, 0.01) = false, expected true")
	}
	if WithinTolerance(100.00, 100.02, 0.01) {
		t.Error("WithinTolerance(100.00, 100.02, 0.01) = true, expected false")
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Simple percentage", 1000, 4, 40},
		{"Zero percentage", 1000, 0, 0},
		{"Negative percentage", 1000, -1, -10},
		{"Fractional percentage", 2100000, 0.74, 15540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPercentage(tt.value, tt.percentage); got != tt.expected {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
			}
		})
	}
}
