// Package raster holds a minimal dense image grid and nearest-neighbour
// point sampling over it.
package raster

import (
	"fmt"
	"math"
)

// Image is a dense 2D grid of scalar pixel values stored row-major in a
// single slice.
type Image struct {
	Rows int
	Cols int
	Pix  []float64
}

// NewImage allocates a zeroed Rows x Cols image.
func NewImage(rows, cols int) *Image {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return &Image{
		Rows: rows,
		Cols: cols,
		Pix:  make([]float64, rows*cols),
	}
}

// FromRows builds an image from row slices. All rows must have the same
// length.
func FromRows(rows [][]float64) (*Image, error) {
	img := NewImage(len(rows), 0)
	if len(rows) == 0 {
		return img, nil
	}
	img.Cols = len(rows[0])
	img.Pix = make([]float64, 0, img.Rows*img.Cols)
	for i, r := range rows {
		if len(r) != img.Cols {
			return nil, fmt.Errorf("raster: row %d has %d columns, want %d", i, len(r), img.Cols)
		}
		img.Pix = append(img.Pix, r...)
	}
	return img, nil
}

// At returns the pixel at (row, col). The caller is responsible for
// bounds; use InBounds first when the indices are untrusted.
func (img *Image) At(row, col int) float64 {
	return img.Pix[row*img.Cols+col]
}

// Set writes the pixel at (row, col).
func (img *Image) Set(row, col int, v float64) {
	img.Pix[row*img.Cols+col] = v
}

// InBounds reports whether (row, col) addresses a pixel.
func (img *Image) InBounds(row, col int) bool {
	return row >= 0 && row < img.Rows && col >= 0 && col < img.Cols
}

// Point is a real-valued sample coordinate. X selects the column and Y
// the row, both 0-based.
type Point struct {
	X float64
	Y float64
}

// Sample rounds each point to the nearest integer pixel, skips points
// that land outside the image, and gathers the remaining pixel values in
// input order. Out-of-bounds points are not an error; the result is
// simply shorter than the input.
func Sample(img *Image, pts []Point) []float64 {
	out := make([]float64, 0, len(pts))
	if img == nil {
		return out
	}
	for _, p := range pts {
		col := int(math.Round(p.X))
		row := int(math.Round(p.Y))
		if !img.InBounds(row, col) {
			continue
		}
		out = append(out, img.At(row, col))
	}
	return out
}
