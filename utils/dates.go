// utils/dates.go
package utils

import "time"

// SameDayMonth reports whether two dates share day-of-month and month,
// ignoring the year.
func SameDayMonth(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month()
}
