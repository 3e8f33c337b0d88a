package printer

import (
	"fmt"
	"time"
)

// DueIn returns a human-readable distance in days from now to a deadline.
// Examples: "today", "in 1 day", "in 5 days", "1 day overdue", "3 days overdue".
func DueIn(deadline, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)

	days := int(due.Sub(today).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}

// FormatDeadline returns the deadline with its distance to now, the raw value when it
// can't be parsed and "-" when missing.
func FormatDeadline(deadline *string, now time.Time) string {
	if deadline == nil {
		return "-"
	}

	d, err := time.Parse("2006-01-02", *deadline)
	if err != nil {
		return *deadline
	}

	return fmt.Sprintf("%s (%s)", *deadline, DueIn(d, now))
}
