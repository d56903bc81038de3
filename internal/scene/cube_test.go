package scene

import (
	"math"
	"testing"
)

func TestCubeVertices(t *testing.T) {
	c := &Cube{Origin: Vec3{1, 2, 3}, Size: 2}
	vs := c.Vertices()

	if vs[0] != (Vec3{1, 2, 3}) {
		t.Errorf("vertex 0 = %v, want origin", vs[0])
	}
	if vs[7] != (Vec3{3, 4, 5}) {
		t.Errorf("vertex 7 = %v, want origin+size on each axis", vs[7])
	}

	// Each vertex offset must be 0 or Size per axis, and all 8 corners
	// must be distinct.
	seen := map[Vec3]bool{}
	for i, v := range vs {
		off := v.Sub(c.Origin)
		for axis := 0; axis < 3; axis++ {
			if off[axis] != 0 && off[axis] != c.Size {
				t.Errorf("vertex %d offset %v not on cube lattice", i, off)
			}
		}
		if seen[v] {
			t.Errorf("vertex %d duplicated: %v", i, v)
		}
		seen[v] = true
	}
}

func TestCubeCenter(t *testing.T) {
	tests := []struct {
		name string
		cube Cube
		want Vec3
	}{
		{"unit at origin", Cube{Size: 1}, Vec3{0.5, 0.5, 0.5}},
		{"offset", Cube{Origin: Vec3{1, 1, 1}, Size: 4}, Vec3{3, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cube.Center(); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubeEdges(t *testing.T) {
	c := DefaultCube()
	vs := c.Vertices()
	edges := c.Edges()

	if len(edges) != 12 {
		t.Fatalf("cube has %d edges, want 12", len(edges))
	}

	// Every edge connects two vertices exactly one edge length apart,
	// and each vertex participates in exactly 3 edges.
	degree := map[int]int{}
	for _, e := range edges {
		d := vs[e[0]].Sub(vs[e[1]]).Norm()
		if math.Abs(d-c.Size) > 1e-12 {
			t.Errorf("edge %v has length %g, want %g", e, d, c.Size)
		}
		degree[e[0]]++
		degree[e[1]]++
	}
	for i := 0; i < 8; i++ {
		if degree[i] != 3 {
			t.Errorf("vertex %d has degree %d, want 3", i, degree[i])
		}
	}
}
