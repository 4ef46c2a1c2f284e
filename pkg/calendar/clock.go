package calendar

import "time"

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now in Location (local time when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Today returns the calendar day of clock.Now().
func Today(clock Clock) Date {
	return DateOf(clock.Now())
}
