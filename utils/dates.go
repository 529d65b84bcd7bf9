package utils

import (
	"fmt"
	"time"
)

// ParseDate converts YYYY-MM-DD to a UTC time.Time.
func ParseDate(strDate string) (time.Time, error) {
	const layout = "2006-01-02"
	t, err := time.Parse(layout, strDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseDate: %w", err)
	}
	return t, nil
}

// WholeDays returns the calendar-day count from start to end, ignoring any
// time-of-day component. The result is negative when end precedes start.
func WholeDays(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// YearsActual365_25 returns the year fraction between two dates, counting
// whole calendar days over a 365.25-day year.
func YearsActual365_25(start, end time.Time) float64 {
	return float64(WholeDays(start, end)) / 365.25
}
