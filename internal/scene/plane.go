package scene

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Plane is a square grid of points, rotated about x/y/z (degrees, in
// that order) and translated to Center. It stands in for the ground or
// an image plane in the demo scene.
type Plane struct {
	Center      Vec3
	RotationDeg Vec3
	Scale       float64
	NumPoints   int
}

// DefaultPlane returns a flat 10x10 grid spanning [-5, 5]^2 at z=0.
func DefaultPlane() *Plane {
	return &Plane{Scale: 5, NumPoints: 10}
}

// Surface returns the transformed grid as three NumPoints x NumPoints
// coordinate grids (x, y, z), row-major over the meshgrid.
func (p *Plane) Surface() (xs, ys, zs [][]float64, err error) {
	if p.NumPoints < 2 {
		return nil, nil, nil, fmt.Errorf("scene: plane needs at least 2 grid points per side, got %d", p.NumPoints)
	}

	n := p.NumPoints
	axis := floats.Span(make([]float64, n), -p.Scale, p.Scale)

	transform := p.transform()

	xs = make([][]float64, n)
	ys = make([][]float64, n)
	zs = make([][]float64, n)
	pt := mat.NewVecDense(4, nil)
	var out mat.VecDense
	for i := 0; i < n; i++ {
		xs[i] = make([]float64, n)
		ys[i] = make([]float64, n)
		zs[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			// Meshgrid convention: row i varies y, column j varies x.
			pt.SetVec(0, axis[j])
			pt.SetVec(1, axis[i])
			pt.SetVec(2, 0)
			pt.SetVec(3, 1)
			out.MulVec(transform, pt)
			xs[i][j] = out.AtVec(0)
			ys[i][j] = out.AtVec(1)
			zs[i][j] = out.AtVec(2)
		}
	}
	return xs, ys, zs, nil
}

// transform builds the homogeneous 4x4 plane transform T·Rz·Ry·Rx.
func (p *Plane) transform() *mat.Dense {
	rx := p.RotationDeg[0] * math.Pi / 180
	ry := p.RotationDeg[1] * math.Pi / 180
	rz := p.RotationDeg[2] * math.Pi / 180

	Rx := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, math.Cos(rx), -math.Sin(rx), 0,
		0, math.Sin(rx), math.Cos(rx), 0,
		0, 0, 0, 1,
	})
	Ry := mat.NewDense(4, 4, []float64{
		math.Cos(ry), 0, math.Sin(ry), 0,
		0, 1, 0, 0,
		-math.Sin(ry), 0, math.Cos(ry), 0,
		0, 0, 0, 1,
	})
	Rz := mat.NewDense(4, 4, []float64{
		math.Cos(rz), -math.Sin(rz), 0, 0,
		math.Sin(rz), math.Cos(rz), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	T := mat.NewDense(4, 4, []float64{
		1, 0, 0, p.Center[0],
		0, 1, 0, p.Center[1],
		0, 0, 1, p.Center[2],
		0, 0, 0, 1,
	})

	var rzy, rot, m mat.Dense
	rzy.Mul(Rz, Ry)
	rot.Mul(&rzy, Rx)
	m.Mul(T, &rot)
	return &m
}
