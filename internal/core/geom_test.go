package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestVec(t *testing.T) {
	a := Vec{X: 100, Y: 100}
	b := Vec{X: 105, Y: 100}

	if d := Dist(a, b); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if got := b.Sub(a); got != (Vec{X: 5, Y: 0}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := (Vec{X: 3, Y: 4}).Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := (Vec{X: 1, Y: 1}).Len(); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("Len() = %v, expected sqrt(2)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3, 0.0, -1.0, 0.0}, // inverted range resolves to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMemoryKeeper(t *testing.T) {
	k := NewMemoryKeeper(10)

	if improved, _ := k.Record(5); improved {
		t.Error("Record(5) should not beat 10")
	}
	if improved, _ := k.Record(10); improved {
		t.Error("Record(10) should not beat an equal best")
	}
	if improved, _ := k.Record(11); !improved {
		t.Error("Record(11) should beat 10")
	}
	if k.Best() != 11 {
		t.Errorf("Best() = %d, expected 11", k.Best())
	}
}
