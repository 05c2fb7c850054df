package timedataset

import (
	"fmt"
	"math"
	"time"
)

// MaxConsecutiveSkips bounds how many candidate times in a row a SkipFunc may reject when building
// a horizon.
const MaxConsecutiveSkips = 366

// SkipFunc reports whether a candidate horizon time should be left out.
type SkipFunc func(time.Time) bool

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// EstimateFreq returns the most common delta between consecutive times. Ties are broken by the
// smallest delta.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// Horizon returns the n times following the end of the slice, stepping by freq. Candidates rejected
// by skip are passed over and do not count towards n.
func (t TimeSlice) Horizon(n int, freq time.Duration, skip SkipFunc) ([]time.Time, error) {
	if len(t) == 0 {
		return nil, ErrNoTrainingData
	}
	if freq <= 0 {
		return nil, fmt.Errorf("got %s, %w", freq, ErrInvalidFreq)
	}
	if n < 0 {
		n = 0
	}

	horizon := make([]time.Time, 0, n)
	next := t.EndTime()
	var skipped int
	for len(horizon) < n {
		next = next.Add(freq)
		if skip != nil && skip(next) {
			skipped++
			if skipped > MaxConsecutiveSkips {
				return nil, fmt.Errorf("at %s, %w", next, ErrHorizonExhausted)
			}
			continue
		}
		skipped = 0
		horizon = append(horizon, next)
	}
	return horizon, nil
}
