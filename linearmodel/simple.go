package linearmodel

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-linreg/floatsunrolled"
	"gonum.org/v1/gonum/stat"
)

// SimpleRegression computes ordinary least squares for a single explanatory variable using the
// closed form sums of x, y, xy and x^2.
type SimpleRegression struct {
	opt *Options
}

var defaultRegression = &SimpleRegression{opt: NewDefaultOptions()}

// NewSimpleRegression initializes a simple linear regression with the provided options. If no
// options are provided the defaults are used.
func NewSimpleRegression(opt *Options) (*SimpleRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &SimpleRegression{
		opt: opt,
	}, nil
}

// FitXY fits a line to the paired x and y samples.
func (s *SimpleRegression) FitXY(x, y []float64) (Model, error) {
	if s.opt == nil {
		return Model{}, ErrNoOptions
	}
	if err := validatePaired(x, y); err != nil {
		return Model{}, err
	}

	n := float64(len(x))
	sumX, sumY, sumXY, sumXX := floatsunrolled.LinearSums(x, y)

	denom := n*sumXX - sumX*sumX
	if math.Abs(denom) < s.opt.Epsilon {
		return Model{}, fmt.Errorf("variance term %g is below %g, %w", denom, s.opt.Epsilon, ErrZeroXVariance)
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	if !isFinite(slope) || !isFinite(intercept) {
		return Model{}, fmt.Errorf("slope %g, intercept %g, %w", slope, intercept, ErrNonFinite)
	}

	return Model{
		slope:     slope,
		intercept: intercept,
	}, nil
}

// FitSeries fits a line to y using the positions 0, 1, ..., n-1 as x. A single value is rejected
// with ErrZeroXVariance since one point cannot determine a slope.
func (s *SimpleRegression) FitSeries(y []float64) (Model, error) {
	if len(y) == 0 {
		return Model{}, ErrEmptyInput
	}
	return s.FitXY(seriesIndex(0, len(y)), y)
}

// RSquared computes 1 - SS_res/SS_tot of the model against x and y. A total sum of squares below the
// configured epsilon returns ErrZeroYVariance and NaN or infinite values return ErrNonFinite. Models
// worse than the mean of y score negative.
func (s *SimpleRegression) RSquared(m Model, x, y []float64) (float64, error) {
	if s.opt == nil {
		return 0.0, ErrNoOptions
	}
	if err := validatePaired(x, y); err != nil {
		return 0.0, err
	}

	ssTot := floatsunrolled.SquaredDevSum(y, stat.Mean(y, nil))
	if !isFinite(ssTot) {
		return 0.0, fmt.Errorf("total sum of squares %g, %w", ssTot, ErrNonFinite)
	}
	if math.Abs(ssTot) < s.opt.Epsilon {
		return 0.0, fmt.Errorf("total sum of squares %g is below %g, %w", ssTot, s.opt.Epsilon, ErrZeroYVariance)
	}

	ssRes := floatsunrolled.SquaredDiffSum(y, m.PredictMany(x))
	r2 := 1.0 - ssRes/ssTot
	if !isFinite(r2) {
		return 0.0, fmt.Errorf("residual sum of squares %g, %w", ssRes, ErrNonFinite)
	}
	return r2, nil
}

// ForecastFromSeries fits y as a series and predicts the next k positions, len(y) through
// len(y)+k-1. Fit errors are returned as is.
func (s *SimpleRegression) ForecastFromSeries(y []float64, k int) ([]float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("got horizon of %d, %w", k, ErrNegativeHorizon)
	}

	m, err := s.FitSeries(y)
	if err != nil {
		return nil, err
	}
	return m.PredictMany(seriesIndex(len(y), k)), nil
}

// FitXY fits a line to the paired x and y samples using the default options.
func FitXY(x, y []float64) (Model, error) {
	return defaultRegression.FitXY(x, y)
}

// FitSeries fits a line to y using the positions 0, 1, ..., n-1 as x with the default options.
func FitSeries(y []float64) (Model, error) {
	return defaultRegression.FitSeries(y)
}

// MSE computes the mean squared error, mean((y - yhat)^2), of the model against x and y. A score
// of 0 means a perfect fit. NaN or infinite values return ErrNonFinite.
func MSE(m Model, x, y []float64) (float64, error) {
	if err := validatePaired(x, y); err != nil {
		return 0.0, err
	}
	mse := floatsunrolled.SquaredDiffSum(y, m.PredictMany(x)) / float64(len(x))
	if !isFinite(mse) {
		return 0.0, fmt.Errorf("mean squared error %g, %w", mse, ErrNonFinite)
	}
	return mse, nil
}

// RSquared computes the coefficient of determination of the model against x and y using the
// default options.
func RSquared(m Model, x, y []float64) (float64, error) {
	return defaultRegression.RSquared(m, x, y)
}

// ForecastFromSeries fits y as a series with the default options and predicts the next k values.
func ForecastFromSeries(y []float64, k int) ([]float64, error) {
	return defaultRegression.ForecastFromSeries(y, k)
}

func validatePaired(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d values and y has %d values, %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return ErrEmptyInput
	}
	return nil
}

// seriesIndex returns the positions start, start+1, ..., start+n-1
func seriesIndex(start, n int) []float64 {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(start + i)
	}
	return idx
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
