// Package identifier builds the human-readable customer numbers used across
// receipts and search: "C" + two-digit year + two-digit month + four-digit
// sequence, monotonically increasing within a calendar month.
package identifier

import (
	"fmt"
	"strconv"
	"time"
)

// Prefix letter for customer numbers.
const customerPrefix = "C"

// CustomerNumberPrefix returns the month-scoped prefix for a point in time,
// e.g. "C2508" for August 2025.
func CustomerNumberPrefix(t time.Time) string {
	return fmt.Sprintf("%s%02d%02d", customerPrefix, t.Year()%100, int(t.Month()))
}

// NextCustomerNumber derives the next number in the month of t. last is the
// highest existing number sharing the month prefix, or empty when the month
// has none yet (sequence starts at 0001). Returns an error if last does not
// carry a parseable 4-digit tail.
func NextCustomerNumber(last string, t time.Time) (string, error) {
	prefix := CustomerNumberPrefix(t)
	seq := 1
	if last != "" {
		if len(last) != len(prefix)+4 {
			return "", fmt.Errorf("identifier: malformed customer number %q", last)
		}
		tail, err := strconv.Atoi(last[len(last)-4:])
		if err != nil {
			return "", fmt.Errorf("identifier: malformed customer number %q", last)
		}
		seq = tail + 1
	}
	if seq > 9999 {
		return "", fmt.Errorf("identifier: customer number sequence exhausted for %s", prefix)
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// ValidCustomerNumber reports whether s matches C<yy><mm><seq4> with a real
// month value.
func ValidCustomerNumber(s string) bool {
	if len(s) != 9 || s[:1] != customerPrefix {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	month, _ := strconv.Atoi(s[3:5])
	return month >= 1 && month <= 12
}
