package gig

import (
	"time"

	"stagelink/models"
	"stagelink/services/schedule"
	"stagelink/utils"
)

// ResolveHistoryAnchor picks the timestamp that represents "when" a terminal
// gig happened, for history-window purposes. Resolution order: last-updated
// timestamp, then scheduled event date combined with its end time (end of
// day when no end is set), then creation timestamp. Returns false when none
// is available; such gigs are never shown in history.
func ResolveHistoryAnchor(g models.Gig) (time.Time, bool) {
	if !g.UpdatedAt.IsZero() {
		return g.UpdatedAt, true
	}

	if g.EventDate != "" {
		if day, err := time.Parse(utils.DateLayout, g.EventDate); err == nil {
			endMinute := utils.MinutesPerDay // end of day when no end time is set
			if g.StartMinute != nil && g.EndMinute != nil {
				if effEnd, _, err := schedule.NormalizeInterval(*g.StartMinute, *g.EndMinute); err == nil {
					endMinute = effEnd
				}
			} else if g.EndMinute != nil {
				endMinute = *g.EndMinute
			}
			return day.Add(time.Duration(endMinute) * time.Minute), true
		}
	}

	if !g.CreatedAt.IsZero() {
		return g.CreatedAt, true
	}
	return time.Time{}, false
}

// IsInHistoryWindow decides whether a terminal (closed/cancelled) gig still
// belongs in the bounded recent-history view. Gigs whose anchor lies in the
// future are excluded, not clamped to zero age.
func IsInHistoryWindow(g models.Gig, now time.Time, windowDays int) bool {
	if g.Status != models.GigStatusClosed && g.Status != models.GigStatusCancelled {
		return false
	}
	anchor, ok := ResolveHistoryAnchor(g)
	if !ok {
		return false
	}
	age := now.Sub(anchor)
	return age >= 0 && age <= time.Duration(windowDays)*24*time.Hour
}
