package rooms

import "time"

// ApplyDate moves current onto the calendar day of date, keeping its clock
// time and location. A nil date leaves current untouched.
func ApplyDate(current time.Time, date *time.Time) time.Time {
	if date == nil {
		return current
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(),
		current.Location())
}

// ApplyTime sets the hour and minute of current from clock and zeroes the
// seconds. The calendar day is kept. A nil clock leaves current untouched.
func ApplyTime(current time.Time, clock *time.Time) time.Time {
	if clock == nil {
		return current
	}
	return time.Date(current.Year(), current.Month(), current.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		current.Location())
}
