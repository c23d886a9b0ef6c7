// Package datekey maps calendar dates to the canonical YYYY-MM-DD keys used to
// index daily records.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the reference layout of a date key.
const Layout = "2006-01-02"

// Resolve returns the key of the calendar day t falls on, in t's own location.
func Resolve(t time.Time) string {
	return t.Format(Layout)
}

// Today resolves the current local date.
func Today() string {
	return Resolve(time.Now())
}

// Parse turns a key back into midnight of that day in the local time zone.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// Shift moves a key by the given number of days.
func Shift(key string, days int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Resolve(t.AddDate(0, 0, days)), nil
}
