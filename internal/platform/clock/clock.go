// Package clock formats record timestamps.
package clock

import "time"

// Layout is ISO 8601 in UTC with millisecond precision.
const Layout = "2006-01-02T15:04:05.000Z"

// Stamp formats t with Layout.
func Stamp(t time.Time) string {
	return t.UTC().Format(Layout)
}
