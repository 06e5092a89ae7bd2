package domain

import (
	"strings"
	"time"
)

// StampLayout is the C-locale ctime rendering, e.g. "Wed Jun  9 04:26:40 1993".
// Splitting a stamp on whitespace yields weekday, month, day, HH:MM:SS and year.
const StampLayout = time.ANSIC

var (
	Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	Months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// FormatStamp renders t in loc using StampLayout.
func FormatStamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(StampLayout)
}

type stampFields struct {
	Weekday string
	Month   string
	Day     string
	Clock   string
	Hour    string
	Year    string
}

// DayLabel returns the calendar-day key "Mon D YYYY".
func (f stampFields) DayLabel() string {
	return f.Month + " " + f.Day + " " + f.Year
}

func splitStamp(stamp string) (stampFields, bool) {
	tokens := strings.Fields(stamp)
	if len(tokens) != 5 {
		return stampFields{}, false
	}
	hour, _, found := strings.Cut(tokens[3], ":")
	if !found {
		return stampFields{}, false
	}
	return stampFields{
		Weekday: tokens[0],
		Month:   tokens[1],
		Day:     tokens[2],
		Clock:   tokens[3],
		Hour:    hour,
		Year:    tokens[4],
	}, true
}
