package forecaster

import (
	"math"
	"time"

	"github.com/aouyang1/go-linreg/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

// toLineData converts values into echart line points. NaN values become gaps in the line.
func toLineData(y []float64) []opts.LineData {
	lineData := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			lineData = append(lineData, opts.LineData{Value: nil})
			continue
		}
		lineData = append(lineData, opts.LineData{Value: v})
	}
	return lineData
}

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		if i >= len(y) {
			break
		}
		line = line.AddSeries(series, toLineData(y[i]))
	}

	return line
}

// LineForecaster generates an echart line chart for a given fit result plotting the actual values
// along with the fit line and the forecast past the end of the training data.
func LineForecaster(trainingData *timedataset.TimeDataset, fitRes, forecastRes *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast Fit",
			},
		),
	)

	n := len(trainingData.T)
	h := len(forecastRes.T)

	t := make([]time.Time, 0, n+h)
	t = append(t, trainingData.T...)
	t = append(t, forecastRes.T...)

	actual := make([]float64, n+h)
	fit := make([]float64, n+h)
	forecast := make([]float64, n+h)
	for i := 0; i < n+h; i++ {
		actual[i] = math.NaN()
		fit[i] = math.NaN()
		forecast[i] = math.NaN()
	}
	copy(actual, trainingData.Y)
	copy(fit, fitRes.Forecast)
	copy(forecast[n:], forecastRes.Forecast)

	// join the forecast to the last fit point
	if n > 0 && len(fitRes.Forecast) == n {
		forecast[n-1] = fitRes.Forecast[n-1]
	}

	line.SetXAxis(t).
		AddSeries("Actual", toLineData(actual)).
		AddSeries("Fit", toLineData(fit)).
		AddSeries("Forecast", toLineData(forecast))
	return line
}
