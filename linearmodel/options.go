package linearmodel

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the magnitude below which a variance term is treated as zero. It is a fixed
// heuristic on the raw sums and does not scale with the input data.
const DefaultEpsilon = 1e-12

// Options represents input options to run the simple linear regression
type Options struct {
	// Epsilon is the threshold under which the x variance term of a fit, or the total sum of squares
	// of an r-squared score, is considered zero.
	Epsilon float64 `json:"epsilon"`
}

// NewDefaultOptions returns a default set of simple linear regression options
func NewDefaultOptions() *Options {
	return &Options{
		Epsilon: DefaultEpsilon,
	}
}

// Validate runs basic validation on the options. A nil receiver yields the default options.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	if math.IsNaN(o.Epsilon) || o.Epsilon <= 0 {
		return nil, fmt.Errorf("got epsilon of %g, %w", o.Epsilon, ErrInvalidEpsilon)
	}
	return o, nil
}
