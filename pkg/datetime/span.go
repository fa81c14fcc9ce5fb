package datetime

import "time"

// Span splits a number of seconds into display units.
//
// Hours is the total number of whole hours, not the remainder after days,
// while Minutes and Seconds are remainders within the hour and minute.
// A countdown of 90061 seconds is therefore {Days: 1, Hours: 25, Minutes: 1, Seconds: 1}.
type Span struct {
	Total   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Breakdown splits seconds into a Span. Negative input yields negative parts.
func Breakdown(seconds int) Span {
	return Span{
		Total:   seconds,
		Days:    seconds / 86400,
		Hours:   seconds / 3600,
		Minutes: (seconds % 3600) / 60,
		Seconds: seconds % 60,
	}
}

// BreakdownDuration is Breakdown over d truncated to whole seconds.
func BreakdownDuration(d time.Duration) Span {
	return Breakdown(int(d / time.Second))
}

// HoursOfDay returns the hours left after removing whole days.
func (s Span) HoursOfDay() int {
	return s.Hours - s.Days*24
}

// Duration converts the span back into a time.Duration.
func (s Span) Duration() time.Duration {
	return time.Duration(s.Total) * time.Second
}
