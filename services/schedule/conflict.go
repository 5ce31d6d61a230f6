package schedule

import (
	"fmt"
	"time"

	"stagelink/models"
	"stagelink/utils"
)

// DetectConflicts reports whether the candidate interval on the given date
// would conflict with any of the supplied committed intervals once each is
// expanded by the buffer. Committed intervals may belong to the candidate's
// date or either adjacent date; buffered spans that spill past midnight are
// compared on a single minute axis anchored at the candidate's midnight.
//
// Overlap is tested open-ended: an interval that ends exactly when the
// buffered other begins does not conflict. The interval identified by
// excludeID is skipped so a record is never checked against itself.
func DetectConflicts(
	date string,
	start, end int,
	committed []models.CommittedInterval,
	excludeID string,
	bufferMinutes int,
) (models.ConflictResult, error) {
	result := models.ConflictResult{BufferMinutes: bufferMinutes}

	candDay, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return result, NewInvalidRangeError(fmt.Sprintf("invalid candidate date %q", date))
	}
	candEnd, _, err := NormalizeInterval(start, end)
	if err != nil {
		return result, err
	}

	for _, ci := range committed {
		if ci.Cancelled {
			continue
		}
		if excludeID != "" && ci.ID == excludeID {
			continue
		}

		ciDay, err := time.Parse(utils.DateLayout, ci.Date)
		if err != nil {
			continue // malformed stored date; never a conflict
		}
		dayDelta := int(ciDay.Sub(candDay).Hours() / 24)
		if dayDelta < -1 || dayDelta > 1 {
			continue
		}

		ciEnd, _, err := NormalizeInterval(ci.Start, ci.End)
		if err != nil {
			continue
		}

		// Project onto the candidate's minute axis and pad by the buffer.
		// Negative or over-1440 bounds are meaningful here: they are the
		// spill into the adjacent day.
		offset := dayDelta * utils.MinutesPerDay
		bufStart := ci.Start + offset - bufferMinutes
		bufEnd := ciEnd + offset + bufferMinutes

		if max(start, bufStart) < min(candEnd, bufEnd) {
			result.Conflicts = append(result.Conflicts, ci)
		}
	}

	result.HasConflicts = len(result.Conflicts) > 0
	return result, nil
}

// AdjacentDates returns the given date together with the dates immediately
// before and after it, the window a buffered conflict check must load.
func AdjacentDates(date string) ([]string, error) {
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return nil, NewInvalidRangeError(fmt.Sprintf("invalid date %q", date))
	}
	return []string{
		day.AddDate(0, 0, -1).Format(utils.DateLayout),
		date,
		day.AddDate(0, 0, 1).Format(utils.DateLayout),
	}, nil
}
