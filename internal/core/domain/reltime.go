package domain

import "fmt"

const (
	msPerMinute  = 60 * 1000
	minutesPerHr = 60
	hoursPerDay  = 24
)

// RelativeTime formats postedOn relative to now, both in milliseconds since
// the epoch: "Just now", "5 mins ago", "1 hour ago", "2 days ago".
func RelativeTime(postedOn, now int64) string {
	minutes := floorDiv(now-postedOn, msPerMinute)
	hours := floorDiv(minutes, minutesPerHr)
	days := floorDiv(hours, hoursPerDay)

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < minutesPerHr:
		return fmt.Sprintf("%d min%s ago", minutes, plural(minutes))
	case hours < hoursPerDay:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	default:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
}

// Greeting returns a salutation for the given hour of the day (0-23).
func Greeting(hour int) string {
	var part string
	switch {
	case hour < 5:
		part = "Night"
	case hour < 12:
		part = "Morning"
	case hour < 15:
		part = "Noon"
	case hour < 20:
		part = "Evening"
	default:
		part = "Night"
	}
	return "Good " + part
}

func plural(n int64) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// floorDiv rounds towards negative infinity, unlike Go's / operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
