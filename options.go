package forecaster

import (
	"fmt"

	"github.com/aouyang1/go-linreg/linearmodel"
)

// CalendarOptions controls which timestamps are left out when extending a daily or coarser series
// into the future. Skipped days do not consume a forecast position, matching training data that
// was only recorded on business days.
type CalendarOptions struct {
	SkipWeekends bool `json:"skip_weekends"`
	SkipHolidays bool `json:"skip_holidays"`
}

// Options configures the regression and forecast horizon of a Forecaster
type Options struct {
	RegressionOptions *linearmodel.Options `json:"regression_options"`
	CalendarOptions   CalendarOptions      `json:"calendar_options"`
}

// NewDefaultOptions returns the default regression options with no calendar skipping
func NewDefaultOptions() *Options {
	return &Options{
		RegressionOptions: linearmodel.NewDefaultOptions(),
	}
}

// Validate returns a validated copy of the options. A nil receiver yields the defaults.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	regOpt, err := o.RegressionOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid regression options, %w", err)
	}

	out := *o
	out.RegressionOptions = regOpt
	return &out, nil
}
