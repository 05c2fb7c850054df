package linearmodel

import "errors"

var (
	ErrNoOptions       = errors.New("no initialized model options")
	ErrLengthMismatch  = errors.New("x and y have different lengths")
	ErrEmptyInput      = errors.New("no input values")
	ErrZeroXVariance   = errors.New("x values have zero variance, slope is undefined")
	ErrZeroYVariance   = errors.New("y values have zero variance, r-squared is undefined")
	ErrNonFinite       = errors.New("fit produced a non-finite slope or intercept")
	ErrInvalidEpsilon  = errors.New("epsilon must be a positive number")
	ErrNegativeHorizon = errors.New("forecast horizon must be non-negative")
)
