package calendar

import "time"

// DateLayout is the wire format for all calendar dates in the system.
const DateLayout = "2006-01-02"

// defaultHolidays is a hand-maintained list of public holidays. Dates are
// compared as plain YYYY-MM-DD strings with no timezone normalization.
var defaultHolidays = []string{
	"2023-01-01", // New Year's Day
	"2023-01-22", // Chinese New Year
	"2023-01-23", // Chinese New Year (2nd day)
	"2023-04-07", // Good Friday
	"2023-05-01", // Labour Day
	"2023-08-09", // National Day
	"2023-12-25", // Christmas Day
}

// Calendar answers weekend/holiday questions for job dates.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a calendar from the default holiday list plus any extra
// YYYY-MM-DD dates from configuration.
func New(extra ...string) *Calendar {
	c := &Calendar{holidays: make(map[string]struct{}, len(defaultHolidays)+len(extra))}
	for _, d := range defaultHolidays {
		c.holidays[d] = struct{}{}
	}
	for _, d := range extra {
		c.holidays[d] = struct{}{}
	}
	return c
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPublicHoliday reports whether the date is in the holiday list.
func (c *Calendar) IsPublicHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format(DateLayout)]
	return ok
}

// IsRestrictedDay reports whether jobs may not be assigned on the date.
func (c *Calendar) IsRestrictedDay(t time.Time) bool {
	return IsWeekend(t) || c.IsPublicHoliday(t)
}
