// File: utils/conversion.go
package utils

import "fmt"

// FormatMinuteOfDay renders minutes-from-midnight as a clock label,
// e.g. 570 -> "9:30 AM". Values past 1440 wrap onto the next day.
func FormatMinuteOfDay(minute int) string {
	minute = ((minute % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hour := minute / 60
	min := minute % 60

	suffix := "AM"
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		displayHour = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, min, suffix)
}

// FormatIntervalLabel renders a start/end pair as a display label,
// e.g. "9:00 AM - 10:30 AM".
func FormatIntervalLabel(start, end int) string {
	return fmt.Sprintf("%s - %s", FormatMinuteOfDay(start), FormatMinuteOfDay(end))
}
