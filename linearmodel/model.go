// Package linearmodel fits a simple ordinary least squares line, y ~ b + mx, over one dimensional
// data and evaluates, scores and extrapolates the result.
package linearmodel

import "fmt"

// Model is a fitted line. It is only produced by a fit and is never modified afterwards, so it can
// be shared and compared by value.
type Model struct {
	slope     float64
	intercept float64
}

// Slope returns the change in y per unit of x
func (m Model) Slope() float64 {
	return m.slope
}

// Intercept returns the value of the line at x = 0
func (m Model) Intercept() float64 {
	return m.intercept
}

// Predict evaluates the line at x
func (m Model) Predict(x float64) float64 {
	return m.slope*x + m.intercept
}

// PredictMany evaluates the line at every x, returning one value per input in the same order.
func (m Model) PredictMany(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = m.Predict(x)
	}
	return res
}

// MSE computes the mean squared error of the line against the observed x and y.
func (m Model) MSE(x, y []float64) (float64, error) {
	return MSE(m, x, y)
}

// RSquared computes the coefficient of determination of the line against the observed x and y
// using the default epsilon.
func (m Model) RSquared(x, y []float64) (float64, error) {
	return RSquared(m, x, y)
}

// Equation returns the line represented as y ~ b + mx
func (m Model) Equation() string {
	return fmt.Sprintf("y ~ %.3f + %.3fx", m.intercept, m.slope)
}

func (m Model) String() string {
	return fmt.Sprintf("Model{Slope: %g, Intercept: %g}", m.slope, m.intercept)
}
