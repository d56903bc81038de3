// Package projection implements the pinhole camera model: projecting 3D
// world points to 2D pixel coordinates through K·[R|t].
package projection

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when an input vector or matrix has the wrong
// shape. It is wrapped with the offending shape; test with errors.Is.
var ErrDimension = errors.New("projection: dimension mismatch")

// ErrZeroDepth is returned when the projected point has (near) zero
// homogeneous scale, i.e. it lies in the camera's principal plane and
// has no finite image.
var ErrZeroDepth = errors.New("projection: point has zero depth")

// depthEps is the smallest homogeneous scale treated as non-degenerate.
const depthEps = 1e-12

// Extrinsic builds the 3x4 extrinsic matrix [R|t] from a 3x3 rotation
// and a length-3 translation.
func Extrinsic(R *mat.Dense, t []float64) (*mat.Dense, error) {
	if err := check3x3("rotation", R); err != nil {
		return nil, err
	}
	if len(t) != 3 {
		return nil, fmt.Errorf("%w: translation has length %d, want 3", ErrDimension, len(t))
	}

	ext := mat.NewDense(3, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ext.Set(i, j, R.At(i, j))
		}
		ext.Set(i, 3, t[i])
	}
	return ext, nil
}

// ProjectPoint maps a 3D world point to 2D pixel coordinates. It forms
// the homogeneous point [X,Y,Z,1], applies P = K·[R|t], and divides the
// first two components by the homogeneous scale. K and R must be 3x3;
// p and t must have length 3.
//
// Points whose homogeneous scale is (near) zero have no finite image and
// are rejected with ErrZeroDepth rather than mapped to ±Inf.
func ProjectPoint(p []float64, K, R *mat.Dense, t []float64) ([2]float64, error) {
	var px [2]float64

	if len(p) != 3 {
		return px, fmt.Errorf("%w: point has length %d, want 3", ErrDimension, len(p))
	}
	if err := check3x3("camera matrix", K); err != nil {
		return px, err
	}
	ext, err := Extrinsic(R, t)
	if err != nil {
		return px, err
	}

	// P = K·[R|t], a 3x4 projection matrix.
	var proj mat.Dense
	proj.Mul(K, ext)

	hom := mat.NewVecDense(4, []float64{p[0], p[1], p[2], 1})
	var img mat.VecDense
	img.MulVec(&proj, hom)

	w := img.AtVec(2)
	if math.Abs(w) < depthEps {
		return px, ErrZeroDepth
	}

	px[0] = img.AtVec(0) / w
	px[1] = img.AtVec(1) / w
	return px, nil
}

// ProjectPoints projects a batch of 3D points with shared camera
// parameters. It fails on the first degenerate or mis-shaped point.
func ProjectPoints(pts [][]float64, K, R *mat.Dense, t []float64) ([][2]float64, error) {
	out := make([][2]float64, 0, len(pts))
	for i, p := range pts {
		px, err := ProjectPoint(p, K, R, t)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out = append(out, px)
	}
	return out, nil
}

func check3x3(name string, m *mat.Dense) error {
	if m == nil {
		return fmt.Errorf("%w: %s is nil", ErrDimension, name)
	}
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return fmt.Errorf("%w: %s is %dx%d, want 3x3", ErrDimension, name, r, c)
	}
	return nil
}
