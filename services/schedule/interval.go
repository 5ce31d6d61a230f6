package schedule

import (
	"fmt"

	"stagelink/utils"
)

// NormalizeInterval resolves a start/end pair of minutes-from-midnight into
// an effective end minute and a day-crossing flag. An end at or before the
// start is treated as continuing past midnight, except that start == end is
// rejected as a zero-duration interval rather than defaulting to 24 hours.
func NormalizeInterval(start, end int) (effectiveEnd int, crossesMidnight bool, err error) {
	if start < 0 || start >= utils.MinutesPerDay || end < 0 || end >= utils.MinutesPerDay {
		return 0, false, NewInvalidDurationError(
			fmt.Sprintf("minutes must be within 0..%d; got start=%d end=%d", utils.MinutesPerDay-1, start, end))
	}
	if start == end {
		return 0, false, NewInvalidDurationError("interval has zero duration")
	}
	if end < start {
		return end + utils.MinutesPerDay, true, nil
	}
	return end, false, nil
}

// IntervalDuration returns the effective duration in minutes, accounting for
// day-crossing.
func IntervalDuration(start, end int) (int, error) {
	effEnd, _, err := NormalizeInterval(start, end)
	if err != nil {
		return 0, err
	}
	return effEnd - start, nil
}

// FormatDuration renders a minute count as an hours/minutes display string.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// AddMinutes advances a start minute by a duration, wrapping modulo one day.
// The caller decides whether a wrapped result implies a date rollover.
func AddMinutes(start, duration int) int {
	sum := (start + duration) % utils.MinutesPerDay
	if sum < 0 {
		sum += utils.MinutesPerDay
	}
	return sum
}
