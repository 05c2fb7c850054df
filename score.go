package forecaster

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-linreg/linearmodel"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit scores. R2 is nil when the observed values have no variance.
type Scores struct {
	MSE  float64  `json:"mean_squared_error"`
	MAPE float64  `json:"mean_average_percent_error"`
	R2   *float64 `json:"r_squared,omitempty"`
}

type rSquaredFunc func(m linearmodel.Model, x, y []float64) (float64, error)

// NewScores calculates the fit scores of the model against the observed x and y
func NewScores(m linearmodel.Model, x, y []float64) (*Scores, error) {
	return newScores(linearmodel.RSquared, m, x, y)
}

func newScores(rSquared rSquaredFunc, m linearmodel.Model, x, y []float64) (*Scores, error) {
	mse, err := linearmodel.MSE(m, x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(m.PredictMany(x), y)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}

	scores := &Scores{
		MSE:  mse,
		MAPE: mape,
	}

	// a flat series leaves r-squared undefined rather than failing the whole score
	r2, err := rSquared(m, x, y)
	if err != nil && !errors.Is(err, linearmodel.ErrZeroYVariance) {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	if err == nil {
		scores.R2 = &r2
	}
	return scores, nil
}

// MAPE calculates the mean average percent error. This is the same as sum(abs((y-yhat)/y))/n.
// A score of 0 means a perfect match with no errors. Zero or NaN actuals are skipped.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, linearmodel.ErrEmptyInput
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}
