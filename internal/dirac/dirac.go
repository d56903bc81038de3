// Package dirac provides numerical approximations of the Dirac delta
// function and a sifting-property estimator built on them.
package dirac

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Epsilon is the half-width of the naive delta approximation.
const Epsilon = 1e-100

// DefaultN is the resolution used by Sift when the caller does not
// choose one. Larger values narrow the rectangle approximation.
const DefaultN = 1e10

// siftSamples is the number of evenly spaced evaluation points used by
// the sifting estimator.
const siftSamples = 1000

// ErrNonPositiveN is returned when a delta resolution parameter is zero
// or negative. The rectangle approximation has half-width 1/(2n), which
// is undefined at n = 0.
var ErrNonPositiveN = errors.New("dirac: resolution n must be positive")

// Delta is the crudest approximation: an infinitely tall, infinitely
// narrow spike modelled as a rectangle of width 2·Epsilon and height
// 1/Epsilon. It returns 1e100 when |x| < Epsilon and 0 otherwise.
func Delta(x float64) float64 {
	if math.Abs(x) < Epsilon {
		return 1 / Epsilon
	}
	return 0
}

// DeltaN is the classic rectangle approximation of the delta function:
// height n over the interval (-1/(2n), 1/(2n)), zero elsewhere. The
// rectangle has unit area for every n, and the family converges to the
// delta distribution as n grows.
func DeltaN(x, n float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w (got %g)", ErrNonPositiveN, n)
	}
	if math.Abs(x) < 1/(2*n) {
		return n, nil
	}
	return 0, nil
}

// Sift estimates f(a) by integrating f against DeltaN centred at a,
// using DefaultN as the resolution.
func Sift(f func(float64) float64, a float64) (float64, error) {
	return SiftN(f, a, DefaultN)
}

// SiftN estimates f(a) via the sifting property: the integral of
// f(x)·δₙ(x−a) over a window of width 4/(2n) centred on a. The window is
// sampled at 1000 evenly spaced points and summed with a uniform step
// width (the spacing between consecutive samples), so each sampled value
// contributes f(x)·δₙ(x−a)·step directly rather than being averaged with
// its neighbour. The estimate carries a systematic factor of roughly
// 1000/999 from that rule.
//
// Accuracy degrades for very large n once the window width approaches
// the floating-point resolution around a.
func SiftN(f func(float64) float64, a, n float64) (float64, error) {
	if f == nil {
		return 0, errors.New("dirac: sift requires a non-nil integrand")
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w (got %g)", ErrNonPositiveN, n)
	}

	dx := 1 / (2 * n)
	xs := floats.Span(make([]float64, siftSamples), a-2*dx, a+2*dx)
	step := xs[1] - xs[0]

	var sum float64
	for _, x := range xs {
		d, err := DeltaN(x-a, n)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			continue
		}
		sum += f(x) * d * step
	}
	return sum, nil
}
