package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp in RFC3339, "2006-01-02 15:04:05" or
// "2006-01-02" format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.DateTime, time.DateOnly} {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
