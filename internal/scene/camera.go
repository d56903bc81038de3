// Package scene models the teaching scene used to demonstrate
// perspective projection: a pinhole camera, a unit cube, and a rotatable
// ground plane, plus the pipeline that renders the cube through the
// camera onto a 640x480 image plane.
package scene

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Image-plane extent of the demo camera, in pixels.
const (
	FrameWidth  = 640
	FrameHeight = 480
)

// nearClip is the minimum depth used by the demo projection. Vertices
// closer than this (or behind the camera) are clamped instead of
// rejected so that a dragged camera never blanks the view.
const nearClip = 0.1

// ErrNoOrientation is returned when a camera operation needs a viewing
// direction but LookAt has not been called yet.
var ErrNoOrientation = errors.New("scene: camera has no orientation; call LookAt first")

// Camera is a pinhole camera with a position, an up reference, and a
// frustum drawn at the given size. Direction, right, and the
// orthonormalized up vector are established by LookAt.
type Camera struct {
	Position Vec3
	Up       Vec3
	Size     float64

	direction Vec3
	right     Vec3
	oriented  bool
}

// DefaultCamera returns the demo camera: positioned at (2,-4,2), z-up,
// frustum size 0.3.
func DefaultCamera() *Camera {
	return &Camera{
		Position: Vec3{2, -4, 2},
		Up:       Vec3{0, 0, 1},
		Size:     0.3,
	}
}

// LookAt orients the camera toward target, rebuilding the orthonormal
// direction/right/up basis. Up is re-derived as right x direction so the
// basis stays orthonormal for any target.
func (c *Camera) LookAt(target Vec3) {
	c.direction = target.Sub(c.Position).Normalize()
	c.right = c.direction.Cross(c.Up).Normalize()
	c.Up = c.right.Cross(c.direction).Normalize()
	c.oriented = true
}

// Direction returns the current viewing direction.
func (c *Camera) Direction() Vec3 { return c.direction }

// Right returns the current right vector.
func (c *Camera) Right() Vec3 { return c.right }

// Vertices returns the five frustum vertices: the apex at the camera
// position followed by the four base corners, each offset by
// size·(±right + direction ± up).
func (c *Camera) Vertices() ([5]Vec3, error) {
	var vs [5]Vec3
	if !c.oriented {
		return vs, ErrNoOrientation
	}
	d, r, u := c.direction, c.right, c.Up
	vs[0] = c.Position
	vs[1] = c.Position.Add(d.Sub(r).Sub(u).Scale(c.Size))
	vs[2] = c.Position.Add(d.Add(r).Sub(u).Scale(c.Size))
	vs[3] = c.Position.Add(d.Add(r).Add(u).Scale(c.Size))
	vs[4] = c.Position.Add(d.Sub(r).Add(u).Scale(c.Size))
	return vs, nil
}

// Rotation returns the 3x3 world-to-camera rotation with rows
// [right, -up, direction]: camera x points right, y down (image
// convention), z along the viewing direction.
func (c *Camera) Rotation() (*mat.Dense, error) {
	if !c.oriented {
		return nil, ErrNoOrientation
	}
	r := c.right
	u := c.Up
	d := c.direction
	return mat.NewDense(3, 3, []float64{
		r[0], r[1], r[2],
		-u[0], -u[1], -u[2],
		d[0], d[1], d[2],
	}), nil
}

// Translation returns the camera-frame translation -R·position.
func (c *Camera) Translation() (Vec3, error) {
	R, err := c.Rotation()
	if err != nil {
		return Vec3{}, err
	}
	p := c.Position
	return Vec3{
		-(R.At(0, 0)*p[0] + R.At(0, 1)*p[1] + R.At(0, 2)*p[2]),
		-(R.At(1, 0)*p[0] + R.At(1, 1)*p[1] + R.At(1, 2)*p[2]),
		-(R.At(2, 0)*p[0] + R.At(2, 1)*p[1] + R.At(2, 2)*p[2]),
	}, nil
}

// DefaultIntrinsics returns the demo camera matrix: 800px focal length,
// principal point at the centre of the 640x480 frame.
func DefaultIntrinsics() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		800, 0, 320,
		0, 800, 240,
		0, 0, 1,
	})
}

// ProjectVertex maps a world-space vertex into pixel coordinates using
// the camera's current orientation and the given intrinsics. Depth is
// clamped to the near plane rather than rejected, matching the demo's
// forgiving behaviour when the camera passes through geometry.
func (c *Camera) ProjectVertex(v Vec3, K *mat.Dense) ([2]float64, error) {
	R, err := c.Rotation()
	if err != nil {
		return [2]float64{}, err
	}
	t, err := c.Translation()
	if err != nil {
		return [2]float64{}, err
	}

	// World to camera frame: R·v + t.
	cam := Vec3{
		R.At(0, 0)*v[0] + R.At(0, 1)*v[1] + R.At(0, 2)*v[2] + t[0],
		R.At(1, 0)*v[0] + R.At(1, 1)*v[1] + R.At(1, 2)*v[2] + t[1],
		R.At(2, 0)*v[0] + R.At(2, 1)*v[1] + R.At(2, 2)*v[2] + t[2],
	}

	z := cam[2]
	if z < nearClip {
		z = nearClip
	}
	x := cam[0] / z
	y := cam[1] / z

	// Pixel coordinates: K·[x, y, 1].
	u := K.At(0, 0)*x + K.At(0, 1)*y + K.At(0, 2)
	w := K.At(1, 0)*x + K.At(1, 1)*y + K.At(1, 2)
	return [2]float64{u, w}, nil
}

// ProjectCube projects all eight cube vertices, in vertex order.
func (c *Camera) ProjectCube(cube *Cube, K *mat.Dense) ([8][2]float64, error) {
	var out [8][2]float64
	for i, v := range cube.Vertices() {
		px, err := c.ProjectVertex(v, K)
		if err != nil {
			return out, err
		}
		out[i] = px
	}
	return out, nil
}
