package timedataset

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// NewBusinessDaySkip returns a SkipFunc rejecting weekends, US federal holidays, or both. Returns
// nil when neither is requested.
func NewBusinessDaySkip(weekends, holidays bool) SkipFunc {
	if !weekends && !holidays {
		return nil
	}

	c := cal.NewBusinessCalendar()
	if !weekends {
		c.SetWorkday(time.Saturday, true)
		c.SetWorkday(time.Sunday, true)
	}
	if holidays {
		c.AddHoliday(us.Holidays...)
	}
	return func(t time.Time) bool {
		return !c.IsWorkday(t)
	}
}
