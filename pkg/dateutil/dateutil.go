package dateutil

import (
	"time"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear returns the calendar year of the configured clock.
func CurrentYear() int {
	return nowFunc().Year()
}

// CalendarYear returns the display year for a 1-based period index.
// A zero startYear means "no label" and yields zero.
func CalendarYear(startYear, periodIndex int) int {
	if startYear == 0 {
		return 0
	}
	return startYear + periodIndex - 1
}

// PeriodEnd returns the last instant of the given 1-based projection year.
func PeriodEnd(startYear, periodIndex int) time.Time {
	return EndOfYear(time.Date(CalendarYear(startYear, periodIndex), 1, 1, 0, 0, 0, 0, time.UTC))
}

// ContributionsInMonth returns how many periodic contributions fall into
// month (1-12) for a frequency given in periods per year. Monthly, quarterly
// and annual schedules land on month ends; frequencies finer than monthly
// return zero here and are spread evenly by the caller.
func ContributionsInMonth(month, frequency int) int {
	switch frequency {
	case 12:
		return 1
	case 4:
		if month%3 == 0 {
			return 1
		}
	case 1:
		if month == 12 {
			return 1
		}
	}
	return 0
}

// IsSubMonthly reports whether contributions happen more often than monthly.
func IsSubMonthly(frequency int) bool {
	return frequency > 12
}

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}
