package linearmodel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func testModel(t *testing.T, reg *SimpleRegression, x, y []float64, slope, intercept, tol float64) {
	t.Helper()

	model, err := reg.FitXY(x, y)
	require.Nil(t, err)

	assert.InDelta(t, slope, model.Slope(), tol, "slope")
	assert.InDelta(t, intercept, model.Intercept(), tol, "intercept")

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, beta, model.Slope(), tol, "gonum slope")
	assert.InDelta(t, alpha, model.Intercept(), tol, "gonum intercept")

	mse, err := MSE(model, x, y)
	require.Nil(t, err)
	assert.InDelta(t, 0.0, mse, tol, "mse")

	r2, err := reg.RSquared(model, x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol, "score")
}

func generateLinearData(n int, slope, intercept, noise float64) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) * 0.5
		y[i] = slope*x[i] + intercept + noise*rand.NormFloat64()
	}
	return x, y
}
