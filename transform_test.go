package easel

import (
	"errors"
	"testing"
)

func identityTransformer() (Transformer, *Mat4, *Mat4, *Mat4) {
	img := Identity4()
	mesh := Identity4()
	proj := Identity4()
	return Transformer{Image: &img, Mesh: &mesh, Projection: &proj}, &img, &mesh, &proj
}

func TestUIToImageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mat  Mat4
	}{
		{"identity", Identity4()},
		{"panned", Translation3(120, -45, 0)},
		{"zoomed", Identity4().ZoomAround(Pt(300, 200), 2.5)},
		{"panned and zoomed", Translation3(50, 80, 0).ZoomAround(Pt(10, 10), 0.4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, img, _, _ := identityTransformer()
			*img = tt.mat

			for _, p := range []Point{Pt(0, 0), Pt(400, 300), Pt(-13.5, 7.25)} {
				imgPt, err := tr.UIToImage(p)
				if err != nil {
					t.Fatalf("UIToImage(%v) error: %v", p, err)
				}
				if got := tr.ImageToUI(imgPt); !pointApproxEqual(got, p) {
					t.Errorf("round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestUIToImageSingular(t *testing.T) {
	tr, img, _, _ := identityTransformer()
	*img = Scaling3(0, 0, 1)

	_, err := tr.UIToImage(Pt(5, 5))
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("UIToImage error = %v, want ErrSingularTransform", err)
	}
}

func TestUIToImageTracksLiveMatrix(t *testing.T) {
	tr, img, _, _ := identityTransformer()

	before, err := tr.UIToImage(Pt(10, 10))
	if err != nil {
		t.Fatalf("UIToImage error: %v", err)
	}

	// Mutate the matrix the Transformer points at; the next conversion
	// must see the new state.
	*img = img.Translate(100, 0, 0)
	after, err := tr.UIToImage(Pt(10, 10))
	if err != nil {
		t.Fatalf("UIToImage error: %v", err)
	}
	if want := before.Sub(Pt(100, 0)); !pointApproxEqual(after, want) {
		t.Errorf("after pan: UIToImage = %v, want %v", after, want)
	}
}

func TestUIToMesh(t *testing.T) {
	tr, _, mesh, _ := identityTransformer()
	*mesh = Scaling3(2, 2, 1)

	got, err := tr.UIToMesh(Pt(1, 1))
	if err != nil {
		t.Fatalf("UIToMesh error: %v", err)
	}
	if want := Pt(0.5, 0.5); !pointApproxEqual(got, want) {
		t.Errorf("UIToMesh = %v, want %v", got, want)
	}
}

func TestUIToMeshSingularProjection(t *testing.T) {
	tr, _, _, proj := identityTransformer()
	*proj = Mat4{}

	if _, err := tr.UIToMesh(Pt(0, 0)); !errors.Is(err, ErrSingularTransform) {
		t.Errorf("UIToMesh error = %v, want ErrSingularTransform", err)
	}
}
