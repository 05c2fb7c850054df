package forecaster

import "time"

// Results pairs each time point with its predicted value
type Results struct {
	T        []time.Time `json:"time"`
	Forecast []float64   `json:"forecast"`
}

// Copy returns a deep copy of the results
func (r *Results) Copy() *Results {
	t := make([]time.Time, len(r.T))
	forecast := make([]float64, len(r.Forecast))
	copy(t, r.T)
	copy(forecast, r.Forecast)
	return &Results{
		T:        t,
		Forecast: forecast,
	}
}

// Summary is a JSON friendly report of a fit and its forecast. It is informational only and cannot
// be loaded back into a Forecaster.
type Summary struct {
	Equation       string    `json:"equation"`
	TrainStartTime time.Time `json:"train_start_time"`
	TrainEndTime   time.Time `json:"train_end_time"`
	NumPoints      int       `json:"num_points"`
	Frequency      string    `json:"frequency"`
	Scores         *Scores   `json:"scores"`
	Forecast       *Results  `json:"forecast"`
}
