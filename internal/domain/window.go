package domain

import (
	"fmt"
	"time"
)

// DateWindow is an inclusive calendar-date interval submitted as one report
// request. The remote API refuses ranges spanning more than 90 days.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the window start in the wire format (YYYY-MM-DD).
func (w DateWindow) StartDate() string {
	return w.Start.Format(time.DateOnly)
}

// EndDate returns the window end in the wire format (YYYY-MM-DD).
func (w DateWindow) EndDate() string {
	return w.End.Format(time.DateOnly)
}

func (w DateWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.StartDate(), w.EndDate())
}
