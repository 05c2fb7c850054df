// floatsunrolled is inspired by the SIMD blog post
// https://github.com/camdencheek/simd_blog/blob/main/main.go
package floatsunrolled

import "errors"

const UnrollBatch = 4

var ErrSliceLengthMismatch = errors.New("slices must have equal lengths")

// LinearSums returns the sum of x, the sum of y, the sum of x*y and the sum of x*x accumulated in a
// single pass over both slices. Callers are expected to check lengths; mismatched slices panic.
func LinearSums(x, y []float64) (sumX, sumY, sumXY, sumXX float64) {
	if len(x) != len(y) {
		panic(ErrSliceLengthMismatch)
	}

	n := len(x) - len(x)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		xTmp := x[i : i+UnrollBatch : i+UnrollBatch]
		yTmp := y[i : i+UnrollBatch : i+UnrollBatch]
		sumX += xTmp[0] + xTmp[1] + xTmp[2] + xTmp[3]
		sumY += yTmp[0] + yTmp[1] + yTmp[2] + yTmp[3]
		sumXY += xTmp[0]*yTmp[0] + xTmp[1]*yTmp[1] + xTmp[2]*yTmp[2] + xTmp[3]*yTmp[3]
		sumXX += xTmp[0]*xTmp[0] + xTmp[1]*xTmp[1] + xTmp[2]*xTmp[2] + xTmp[3]*xTmp[3]
	}
	for i := n; i < len(x); i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}
	return sumX, sumY, sumXY, sumXX
}

// SquaredDiffSum returns sum((a-b)^2).
func SquaredDiffSum(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}

	var sum float64
	n := len(a) - len(a)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		bTmp := b[i : i+UnrollBatch : i+UnrollBatch]
		d0 := aTmp[0] - bTmp[0]
		d1 := aTmp[1] - bTmp[1]
		d2 := aTmp[2] - bTmp[2]
		d3 := aTmp[3] - bTmp[3]
		sum += d0*d0 + d1*d1 + d2*d2 + d3*d3
	}
	for i := n; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// SquaredDevSum returns sum((a-c)^2) for a constant c, typically the mean of a.
func SquaredDevSum(a []float64, c float64) float64 {
	var sum float64
	n := len(a) - len(a)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		d0 := aTmp[0] - c
		d1 := aTmp[1] - c
		d2 := aTmp[2] - c
		d3 := aTmp[3] - c
		sum += d0*d0 + d1*d1 + d2*d2 + d3*d3
	}
	for i := n; i < len(a); i++ {
		d := a[i] - c
		sum += d * d
	}
	return sum
}
