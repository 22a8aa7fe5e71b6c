package easel

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got, want := a.Add(b), Pt(4, 2); got != want {
		t.Errorf("%v.Add(%v) = %v, want %v", a, b, got, want)
	}
	if got, want := a.Sub(b), Pt(2, 6); got != want {
		t.Errorf("%v.Sub(%v) = %v, want %v", a, b, got, want)
	}
	if got, want := b.Mul(3), Pt(3, -6); got != want {
		t.Errorf("%v.Mul(3) = %v, want %v", b, got, want)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("%v.Length() = %v, want 5", a, got)
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(2, 3).Distance(Pt(2, 3)); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -20)
	tests := []struct {
		t    float32
		want Point
	}{
		{0, a},
		{1, b},
		{0.5, Pt(5, -10)},
		{0.25, Pt(2.5, -5)},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
