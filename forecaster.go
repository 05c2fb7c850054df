// Package forecaster fits a straight line through a time series using its positions as x values and
// extends it forward on the series' own cadence.
package forecaster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"github.com/aouyang1/go-linreg/linearmodel"
	"github.com/aouyang1/go-linreg/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/floats"
)

var ErrNotFitted = errors.New("forecaster has not been fit")

// MinCalendarFreq is the smallest cadence for which calendar options are applied
const MinCalendarFreq = 24 * time.Hour

// Forecaster fits a simple linear model to a time series and can be used to generate forecasts
type Forecaster struct {
	opt        *Options
	regression *linearmodel.SimpleRegression

	model           linearmodel.Model
	freq            time.Duration
	skip            timedataset.SkipFunc
	fitTrainingData *timedataset.TimeDataset
	fitResults      *Results
	residual        []float64
	scores          *Scores
}

// New creates a new instance of a Forecaster using the provided options. If no options are provided
// a default is used.
func New(opt *Options) (*Forecaster, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	regression, err := linearmodel.NewSimpleRegression(opt.RegressionOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize regression, %w", err)
	}
	return &Forecaster{
		opt:        opt,
		regression: regression,
	}, nil
}

// Fit fits the series y recorded at times t. Each observation is placed at its position in the
// series so t only needs to be strictly increasing. Regression errors are wrapped and can be
// matched with errors.Is against the linearmodel errors.
func (f *Forecaster) Fit(t []time.Time, y []float64) error {
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}

	model, err := f.regression.FitSeries(td.Y)
	if err != nil {
		return fmt.Errorf("unable to fit series, %w", err)
	}

	freq, err := timedataset.TimeSlice(td.T).EstimateFreq()
	if err != nil {
		return fmt.Errorf("unable to infer series frequency, %w", err)
	}

	x := td.Index()
	fitted := model.PredictMany(x)
	residual := make([]float64, len(fitted))
	floats.SubTo(residual, td.Y, fitted)

	scores, err := newScores(f.regression.RSquared, model, x, td.Y)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}
	if scores.R2 == nil {
		slog.Warn("r-squared undefined for series with no variance", "num_points", td.Len())
	}

	f.model = model
	f.freq = freq
	f.skip = f.calendarSkip(freq)
	f.fitTrainingData = td
	fitT := make([]time.Time, td.Len())
	copy(fitT, td.T)
	f.fitResults = &Results{
		T:        fitT,
		Forecast: fitted,
	}
	f.residual = residual
	f.scores = scores
	return nil
}

func (f *Forecaster) calendarSkip(freq time.Duration) timedataset.SkipFunc {
	calOpt := f.opt.CalendarOptions
	if !calOpt.SkipWeekends && !calOpt.SkipHolidays {
		return nil
	}
	if freq < MinCalendarFreq {
		slog.Warn("ignoring calendar options for sub-daily series",
			"frequency", freq.String(),
			"skip_weekends", calOpt.SkipWeekends,
			"skip_holidays", calOpt.SkipHolidays,
		)
		return nil
	}
	return timedataset.NewBusinessDaySkip(calOpt.SkipWeekends, calOpt.SkipHolidays)
}

// Forecast predicts the next horizon points after the training data. Times step forward by the
// most common interval of the training data, skipping calendar days if configured.
func (f *Forecaster) Forecast(horizon int) (*Results, error) {
	if f.fitTrainingData == nil {
		return nil, ErrNotFitted
	}
	if horizon < 0 {
		return nil, fmt.Errorf("got horizon of %d, %w", horizon, linearmodel.ErrNegativeHorizon)
	}

	t, err := timedataset.TimeSlice(f.fitTrainingData.T).Horizon(horizon, f.freq, f.skip)
	if err != nil {
		return nil, fmt.Errorf("unable to generate horizon times, %w", err)
	}

	start := f.fitTrainingData.Len()
	x := make([]float64, horizon)
	for i := range x {
		x[i] = float64(start + i)
	}

	return &Results{
		T:        t,
		Forecast: f.model.PredictMany(x),
	}, nil
}

// Model returns the fitted line
func (f *Forecaster) Model() linearmodel.Model {
	return f.model
}

// Equation returns a string representation of the fit line as y ~ b + mx
func (f *Forecaster) Equation() string {
	return f.model.Equation()
}

// Frequency returns the interval inferred from the training data
func (f *Forecaster) Frequency() time.Duration {
	return f.freq
}

// Residuals returns a copy of the difference between the training data and the fit line
func (f *Forecaster) Residuals() []float64 {
	if f.residual == nil {
		return nil
	}
	residual := make([]float64, len(f.residual))
	copy(residual, f.residual)
	return residual
}

// Scores returns a copy of the fit scores against the training data
func (f *Forecaster) Scores() *Scores {
	if f.scores == nil {
		return nil
	}
	scores := *f.scores
	if f.scores.R2 != nil {
		r2 := *f.scores.R2
		scores.R2 = &r2
	}
	return &scores
}

// TrainingData returns a copy of the training data used to fit the current forecaster model
func (f *Forecaster) TrainingData() *timedataset.TimeDataset {
	if f.fitTrainingData == nil {
		return nil
	}
	return f.fitTrainingData.Copy()
}

// FitResults returns a copy of the fit line evaluated at each training time
func (f *Forecaster) FitResults() *Results {
	if f.fitResults == nil {
		return nil
	}
	return f.fitResults.Copy()
}

// Summary reports the fit along with a forecast of the given horizon
func (f *Forecaster) Summary(horizon int) (*Summary, error) {
	forecastRes, err := f.Forecast(horizon)
	if err != nil {
		return nil, err
	}

	ts := timedataset.TimeSlice(f.fitTrainingData.T)
	return &Summary{
		Equation:       f.Equation(),
		TrainStartTime: ts.StartTime(),
		TrainEndTime:   ts.EndTime(),
		NumPoints:      f.fitTrainingData.Len(),
		Frequency:      f.freq.String(),
		Scores:         f.Scores(),
		Forecast:       forecastRes,
	}, nil
}

// WriteSummary writes the Summary as indented JSON
func (f *Forecaster) WriteSummary(w io.Writer, horizon int) error {
	summary, err := f.Summary(horizon)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// TablePrint writes a human readable report of the fit
func (f *Forecaster) TablePrint(w io.Writer, prefix, indent string) error {
	td := f.fitTrainingData
	if td == nil {
		return ErrNotFitted
	}
	ts := timedataset.TimeSlice(td.T)

	if _, err := fmt.Fprintf(w, "%s%sForecaster:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining Start Time: %s\n", prefix, indentExpand(indent, 1), ts.StartTime()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining End Time: %s\n", prefix, indentExpand(indent, 1), ts.EndTime()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sPoints: %d    Frequency: %s\n", prefix, indentExpand(indent, 1), td.Len(), f.freq); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sEquation: %s\n", prefix, indentExpand(indent, 1), f.Equation()); err != nil {
		return err
	}

	if f.scores != nil {
		r2 := "undefined"
		if f.scores.R2 != nil {
			r2 = fmt.Sprintf("%.3f", *f.scores.R2)
		}
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %s\n",
			prefix, indentExpand(indent, 1),
			f.scores.MAPE,
			f.scores.MSE,
			r2,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sCoefficients:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sName\tValue\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%sIntercept\t%.3f\t\n", prefix, indentExpand(indent, 1), f.model.Intercept()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%sSlope\t%.3f\t\n", prefix, indentExpand(indent, 1), f.model.Slope()); err != nil {
		return err
	}
	return tbl.Flush()
}

// PlotOpts sets the horizon to forecast out. By default will use 10% of the training size.
type PlotOpts struct {
	HorizonCnt int
}

// PlotFit uses the Apache Echarts library to generate an html page showing the training data, the
// fit line with its forecast and the fit residual
func (f *Forecaster) PlotFit(w io.Writer, opt *PlotOpts) error {
	td := f.fitTrainingData
	if td == nil {
		return ErrNotFitted
	}

	horizonCnt := td.Len() / 10
	if opt != nil {
		horizonCnt = opt.HorizonCnt
	}
	if horizonCnt < 1 {
		horizonCnt = 1
	}

	forecastRes, err := f.Forecast(horizonCnt)
	if err != nil {
		return fmt.Errorf("unable to predict with horizon, %w", err)
	}

	t := make([]time.Time, 0, td.Len()+horizonCnt)
	t = append(t, td.T...)
	t = append(t, forecastRes.T...)

	residuals := make([]float64, 0, len(t))
	residuals = append(residuals, f.residual...)
	for range forecastRes.T {
		residuals = append(residuals, math.NaN())
	}

	page := components.NewPage()
	page.AddCharts(
		LineForecaster(td, f.fitResults, forecastRes),
		LineTSeries(
			"Forecast Residual",
			[]string{"Residual"},
			t,
			[][]float64{residuals},
		),
	)
	return page.Render(w)
}
