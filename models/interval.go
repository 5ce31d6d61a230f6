package models

// CommittedInterval is a confirmed block on a musician's calendar: either a
// booked event or a confirmed availability slot. It is the universe an
// incoming schedule request is conflict-checked against.
type CommittedInterval struct {
	ID         string `bson:"id" json:"id"`
	MusicianID string `bson:"musicianId" json:"musicianId"`
	Date       string `bson:"date" json:"date"`               // "YYYY-MM-DD"
	Start      int    `bson:"start" json:"start"`             // minutes from midnight
	End        int    `bson:"end" json:"end"`                 // minutes from midnight; End <= Start crosses midnight
	Kind       string `bson:"kind" json:"kind"`               // "event" or "availability"
	GigID      string `bson:"gigId,omitempty" json:"gigId,omitempty"`
	Title      string `bson:"title,omitempty" json:"title,omitempty"`
	Cancelled  bool   `bson:"cancelled" json:"cancelled"`
}

// Committed interval kinds.
const (
	IntervalKindEvent        = "event"
	IntervalKindAvailability = "availability"
)

// ConflictResult is the outcome of a buffered conflict query. The detector
// never mutates state; conflicts are informational for the caller.
type ConflictResult struct {
	HasConflicts  bool                `json:"hasConflicts"`
	Conflicts     []CommittedInterval `json:"conflicts"`
	BufferMinutes int                 `json:"bufferMinutes"`
}

// RecurrenceRule is a weekly pattern plus a date range, expanded on demand
// into concrete calendar dates. It owns no persisted state.
type RecurrenceRule struct {
	Weekdays   []int  `json:"weekdays" binding:"required"` // 0 = Sunday .. 6 = Saturday
	RangeStart string `json:"rangeStart" binding:"required"`
	RangeEnd   string `json:"rangeEnd" binding:"required"`
}

// BulkCreateResult aggregates per-date outcomes of a partial-tolerant bulk
// availability creation. Created + Failed equals the number of expanded dates.
type BulkCreateResult struct {
	Created     int      `json:"created"`
	Failed      int      `json:"failed"`
	FailedDates []string `json:"failedDates,omitempty"`
}
