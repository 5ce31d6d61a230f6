package schedule

import (
	"fmt"
	"time"

	"stagelink/utils"
)

// ExpandRecurrence turns a weekly pattern into the ascending list of concrete
// dates between rangeStart and rangeEnd inclusive, skipping dates before
// today. A start after the end yields an empty result, not an error. The
// expansion is pure and idempotent.
func ExpandRecurrence(weekdays []int, rangeStart, rangeEnd, today string) ([]string, error) {
	if len(weekdays) == 0 {
		return nil, NewEmptyPatternError("at least one weekday is required")
	}

	wanted := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		if wd < 0 || wd > 6 {
			return nil, NewInvalidRangeError(fmt.Sprintf("weekday %d out of range 0..6", wd))
		}
		wanted[time.Weekday(wd)] = true
	}

	startDay, err := time.Parse(utils.DateLayout, rangeStart)
	if err != nil {
		return nil, NewInvalidRangeError(fmt.Sprintf("invalid range start %q", rangeStart))
	}
	endDay, err := time.Parse(utils.DateLayout, rangeEnd)
	if err != nil {
		return nil, NewInvalidRangeError(fmt.Sprintf("invalid range end %q", rangeEnd))
	}
	todayDay, err := time.Parse(utils.DateLayout, today)
	if err != nil {
		return nil, NewInvalidRangeError(fmt.Sprintf("invalid today %q", today))
	}

	var dates []string
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		if !wanted[d.Weekday()] {
			continue
		}
		if d.Before(todayDay) {
			continue
		}
		dates = append(dates, d.Format(utils.DateLayout))
	}
	return dates, nil
}
