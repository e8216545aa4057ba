package wizard

import "time"

// DateLayout wire format for all wizard dates
const DateLayout = "2006-01-02"

// dateOnly drops the time-of-day part so day arithmetic never
// crosses a DST boundary.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetweenInclusive returns the trip length in days counting both the
// start and the end day, so a same-day trip is 1 day. The result is
// non-positive when end is before start; callers clamp to 1.
func DaysBetweenInclusive(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// EndFromStartAndDays returns the end date of a trip that starts on start
// and lasts days days inclusive. days below 1 is treated as 1.
func EndFromStartAndDays(start time.Time, days int) time.Time {
	if days < 1 {
		days = 1
	}
	return dateOnly(start).AddDate(0, 0, days-1)
}

// AgeAt returns full years between birth and on.
func AgeAt(birth, on time.Time) int {
	b := dateOnly(birth)
	o := dateOnly(on)
	age := o.Year() - b.Year()
	if o.Month() < b.Month() || (o.Month() == b.Month() && o.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// ParseDate parses a wizard wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
