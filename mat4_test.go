package easel

import (
	"testing"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mat"
)

const matEpsilon = 1e-4

func matApproxEqual(a, b Mat4) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > matEpsilon {
			return false
		}
	}
	return true
}

func pointApproxEqual(a, b Point) bool {
	return math32.Abs(a.X-b.X) <= matEpsilon && math32.Abs(a.Y-b.Y) <= matEpsilon
}

func TestIdentity4(t *testing.T) {
	m := Identity4()
	if !m.IsIdentity() {
		t.Errorf("Identity4().IsIdentity() = false, want true")
	}
	p := Pt(3, -7)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity4().TransformPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestMat4Mul(t *testing.T) {
	a := Translation3(10, 20, 0)
	b := Scaling3(2, 2, 1)

	// Translation applied after scale: (1,1) -> (2,2) -> (12,22).
	got := a.Mul(b).TransformPoint(Pt(1, 1))
	if want := Pt(12, 22); !pointApproxEqual(got, want) {
		t.Errorf("T*S transform = %v, want %v", got, want)
	}

	// Scale applied after translation: (1,1) -> (11,21) -> (22,42).
	got = b.Mul(a).TransformPoint(Pt(1, 1))
	if want := Pt(22, 42); !pointApproxEqual(got, want) {
		t.Errorf("S*T transform = %v, want %v", got, want)
	}
}

func TestTranslatePreVsLocal(t *testing.T) {
	m := Scaling3(2, 2, 1)

	// Translate shifts in target space: unaffected by the scale.
	got := m.Translate(5, 0, 0).TransformPoint(Pt(1, 0))
	if want := Pt(7, 0); !pointApproxEqual(got, want) {
		t.Errorf("Translate transform = %v, want %v", got, want)
	}

	// TranslateLocal shifts in source space: scaled by the matrix.
	got = m.TranslateLocal(5, 0, 0).TransformPoint(Pt(1, 0))
	if want := Pt(12, 0); !pointApproxEqual(got, want) {
		t.Errorf("TranslateLocal transform = %v, want %v", got, want)
	}
}

func TestZoomAroundKeepsPivotFixed(t *testing.T) {
	tests := []struct {
		name  string
		m     Mat4
		pivot Point
		s     float32
	}{
		{"identity, origin pivot", Identity4(), Pt(0, 0), 2},
		{"identity, offset pivot", Identity4(), Pt(100, 50), 1.25},
		{"translated view", Translation3(30, -20, 0), Pt(64, 64), 0.5},
		{"scaled view", Scaling3(2, 2, 1).Mul(Translation3(10, 10, 0)), Pt(200, 120), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if !ok {
				t.Fatalf("test matrix not invertible")
			}
			// The source point currently mapping onto the pivot must keep
			// mapping onto it after the zoom.
			src := inv.TransformPoint(tt.pivot)
			z := tt.m.ZoomAround(tt.pivot, tt.s)
			if got := z.TransformPoint(src); !pointApproxEqual(got, tt.pivot) {
				t.Errorf("pivot drifted: ZoomAround(%v, %v) maps %v to %v",
					tt.pivot, tt.s, src, got)
			}
			if got, want := z.ScaleX(), tt.m.ScaleX()*tt.s; math32.Abs(got-want) > matEpsilon {
				t.Errorf("ScaleX() = %v, want %v", got, want)
			}
		})
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Identity4()},
		{"translation", Translation3(12, -7, 3)},
		{"scale", Scaling3(2.5, 0.25, 1)},
		{"view-like", Translation3(100, 50, 0).Mul(Scaling3(1.25, 1.25, 1))},
		{"zoomed around pivot", Identity4().ZoomAround(Pt(320, 240), 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if !ok {
				t.Fatalf("Inverse() reported singular for invertible matrix")
			}
			if got := tt.m.Mul(inv); !matApproxEqual(got, Identity4()) {
				t.Errorf("m * m^-1 = %v, want identity", got)
			}
			if got := inv.Mul(tt.m); !matApproxEqual(got, Identity4()) {
				t.Errorf("m^-1 * m = %v, want identity", got)
			}
		})
	}
}

// TestMat4InverseMatchesGonum cross-checks the cofactor inverse against
// gonum's LU-based inverse on a general (non axis-aligned) matrix.
func TestMat4InverseMatchesGonum(t *testing.T) {
	m := Mat4{
		2, 1, 0, 30,
		-1, 3, 0.5, -12,
		0, 0.25, 1.5, 4,
		0, 0, 0, 1,
	}

	data := make([]float64, 16)
	for i, v := range m {
		data[i] = float64(v)
	}
	var want mat.Dense
	if err := want.Inverse(mat.NewDense(4, 4, data)); err != nil {
		t.Fatalf("gonum Inverse: %v", err)
	}

	inv, ok := m.Inverse()
	if !ok {
		t.Fatalf("Inverse() reported singular")
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			got := float64(inv[row*4+col])
			if w := want.At(row, col); math32.Abs(float32(got-w)) > matEpsilon {
				t.Errorf("inv[%d,%d] = %v, want %v", row, col, got, w)
			}
		}
	}
}

func TestMat4InverseSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"zero matrix", Mat4{}},
		{"zero scale", Scaling3(0, 1, 1)},
		{"rank deficient", Mat4{
			1, 2, 3, 4,
			2, 4, 6, 8,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.m.Inverse(); ok {
				t.Errorf("Inverse() = ok for singular matrix %v", tt.m)
			}
		})
	}
}
