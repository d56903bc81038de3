package scene

// Cube is an axis-aligned cube anchored at Origin with the given edge
// length.
type Cube struct {
	Origin Vec3
	Size   float64
}

// cubeEdges lists the 12 edges as vertex index pairs into Vertices().
var cubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {4, 5}, {4, 6}, {7, 3}, {7, 5}, {7, 6},
}

// DefaultCube returns a unit cube at the origin.
func DefaultCube() *Cube {
	return &Cube{Size: 1}
}

// Center returns the cube's centre point.
func (c *Cube) Center() Vec3 {
	h := c.Size / 2
	return c.Origin.Add(Vec3{h, h, h})
}

// Vertices returns the eight corners. Vertex i has its x/y/z offset by
// Size when bit 0/1/2 of i is set, matching the edge table.
func (c *Cube) Vertices() [8]Vec3 {
	s := c.Size
	var vs [8]Vec3
	for i := 0; i < 8; i++ {
		var off Vec3
		if i&1 != 0 {
			off[0] = s
		}
		if i&2 != 0 {
			off[1] = s
		}
		if i&4 != 0 {
			off[2] = s
		}
		vs[i] = c.Origin.Add(off)
	}
	return vs
}

// Edges returns the 12 edges as pairs of vertex indices.
func (c *Cube) Edges() [12][2]int {
	return cubeEdges
}
