package datetime

import "time"

// DefaultLayout renders as "2006-01-02 15:04:05".
const DefaultLayout = time.DateTime

// KST is Korea Standard Time. Korea has no daylight saving time.
var KST = time.FixedZone("KST", 9*60*60)

// Format renders t with layout, or DefaultLayout when layout is empty or omitted.
func Format(t time.Time, layout ...string) string {
	l := DefaultLayout
	if len(layout) > 0 && layout[0] != "" {
		l = layout[0]
	}
	return t.Format(l)
}

// ToKST returns the same instant expressed in KST.
func ToKST(t time.Time) time.Time {
	return t.In(KST)
}

// FormatKST is Format applied to ToKST(t).
func FormatKST(t time.Time, layout ...string) string {
	return Format(ToKST(t), layout...)
}

// Component is a calendar field of a time value.
type Component uint8

const (
	Year Component = iota + 1
	Month
	Day
	Hour
	Minute
	Second
	Weekday
)

// Get returns one calendar component of t in t's own location.
// Weekday runs 1 to 7 starting at Sunday. Unknown components yield 0.
func Get(t time.Time, c Component) int {
	switch c {
	case Year:
		return t.Year()
	case Month:
		return int(t.Month())
	case Day:
		return t.Day()
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Weekday:
		return int(t.Weekday()) + 1
	default:
		return 0
	}
}

// Components returns the requested components of t keyed by component.
func Components(t time.Time, cs ...Component) map[Component]int {
	out := make(map[Component]int, len(cs))
	for _, c := range cs {
		out[c] = Get(t, c)
	}
	return out
}
