package weights

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUniform(t *testing.T) {
	w := Uniform(4)
	if len(w) != 4 {
		t.Fatalf("length: got %d, want 4", len(w))
	}
	for i, v := range w {
		if v != 1 {
			t.Errorf("w[%d]: got %v, want 1", i, v)
		}
	}
	if Uniform(0) != nil || Uniform(-1) != nil {
		t.Error("Uniform with n <= 0 should return nil")
	}
}

func TestMovingAverage(t *testing.T) {
	w := MovingAverage(5)
	if len(w) != 5 {
		t.Fatalf("length: got %d, want 5", len(w))
	}
	for i, v := range w {
		if v != 0.2 {
			t.Errorf("w[%d]: got %v, want 0.2", i, v)
		}
	}
	if !almostEqual(DCGain(w), 1, eps) {
		t.Errorf("DC gain: got %v, want 1", DCGain(w))
	}
	if MovingAverage(0) != nil {
		t.Error("MovingAverage(0) should return nil")
	}
}

func TestTriangular(t *testing.T) {
	w := Triangular(3)
	want := []float64{3.0 / 6, 2.0 / 6, 1.0 / 6}
	for i := range want {
		if !almostEqual(w[i], want[i], eps) {
			t.Errorf("w[%d]: got %v, want %v", i, w[i], want[i])
		}
	}
	if !almostEqual(DCGain(w), 1, eps) {
		t.Errorf("DC gain: got %v, want 1", DCGain(w))
	}
	if Triangular(0) != nil {
		t.Error("Triangular(0) should return nil")
	}
}

func TestExponential(t *testing.T) {
	w := Exponential(3, 0.5)
	// Raw shape 1, 0.5, 0.25 normalized by 1.75.
	want := []float64{4.0 / 7, 2.0 / 7, 1.0 / 7}
	for i := range want {
		if !almostEqual(w[i], want[i], eps) {
			t.Errorf("w[%d]: got %v, want %v", i, w[i], want[i])
		}
	}
	if !almostEqual(DCGain(w), 1, eps) {
		t.Errorf("DC gain: got %v, want 1", DCGain(w))
	}

	if Exponential(0, 0.5) != nil {
		t.Error("Exponential with n <= 0 should return nil")
	}
	if Exponential(3, 0) != nil || Exponential(3, 1.5) != nil {
		t.Error("Exponential with decay outside (0, 1] should return nil")
	}
	if Exponential(3, 1) == nil {
		t.Error("Exponential with decay 1 should be valid (uniform)")
	}
}

func TestNormalize(t *testing.T) {
	w := []float64{2, 4, 2}
	n := Normalize(w)
	if !almostEqual(DCGain(n), 1, eps) {
		t.Errorf("DC gain: got %v, want 1", DCGain(n))
	}
	if w[1] != 4 {
		t.Error("Normalize modified its input")
	}

	// Zero-sum vectors come back unscaled.
	z := Normalize([]float64{1, -1})
	if z[0] != 1 || z[1] != -1 {
		t.Errorf("zero-sum: got %v, want [1 -1]", z)
	}
}

func TestDCGain(t *testing.T) {
	if got := DCGain([]float64{0.5, 0.3, 0.2}); !almostEqual(got, 1, eps) {
		t.Errorf("got %v, want 1", got)
	}
	if got := DCGain([]float64{1, -1}); !almostEqual(got, 0, eps) {
		t.Errorf("got %v, want 0", got)
	}
}
