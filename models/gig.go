package models

import "time"

// Gig lifecycle statuses.
const (
	GigStatusOpen      = "open"
	GigStatusInReview  = "in_review"
	GigStatusHired     = "hired"
	GigStatusClosed    = "closed"
	GigStatusCancelled = "cancelled"
)

// Application statuses. Pending is the only non-terminal state.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusHired    = "hired"
	ApplicationStatusRejected = "rejected"
)

// Gig represents a postable opportunity that accepts musician applications.
type Gig struct {
	ID        string `bson:"id" json:"id"`
	CompanyID string `bson:"companyId" json:"companyId"` // Account that posted the gig
	Title     string `bson:"title" json:"title"`
	Venue     string `bson:"venue,omitempty" json:"venue,omitempty"`

	// Budget is the optional total cap across all hires. A nil budget means
	// fee checks are skipped entirely; absence is not a zero cap.
	Budget *float64 `bson:"budget,omitempty" json:"budget,omitempty"`

	// Optional schedule. EventDate is "YYYY-MM-DD"; Start/End are minutes
	// from midnight (e.g., 1140 for 7:00 PM). All three are nil when the
	// gig has no fixed schedule yet.
	EventDate   string `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	StartMinute *int   `bson:"startMinute,omitempty" json:"startMinute,omitempty"`
	EndMinute   *int   `bson:"endMinute,omitempty" json:"endMinute,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	Version   int       `bson:"version" json:"version"` // optimistic concurrency guard
}

// HasBudget reports whether the gig defines a budget cap.
func (g Gig) HasBudget() bool {
	return g.Budget != nil
}

// HasSchedule reports whether the gig defines a concrete event schedule.
func (g Gig) HasSchedule() bool {
	return g.EventDate != "" && g.StartMinute != nil && g.EndMinute != nil
}

// IsTerminal reports whether the gig no longer accepts new applications.
func (g Gig) IsTerminal() bool {
	return g.Status == GigStatusHired || g.Status == GigStatusClosed || g.Status == GigStatusCancelled
}

// Application is a musician's bid on a gig.
type Application struct {
	ID         string `bson:"id" json:"id"`
	GigID      string `bson:"gigId" json:"gigId"`
	MusicianID string `bson:"musicianId" json:"musicianId"`

	// Fee is the musician's proposed fee. Nil means no fee was declared;
	// when the gig carries a budget a declared fee is mandatory for hiring.
	Fee *float64 `bson:"fee,omitempty" json:"fee,omitempty"`

	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the application still occupies the one-active-
// application-per-musician slot on its gig.
func (a Application) IsActive() bool {
	return a.Status == ApplicationStatusPending || a.Status == ApplicationStatusHired
}

// HireResult reports the outcome of a committed hire decision.
type HireResult struct {
	GigID       string   `json:"gigId"`
	HiredIDs    []string `json:"hiredIds"`
	RejectedIDs []string `json:"rejectedIds"`
	TotalFees   *float64 `json:"totalFees,omitempty"` // nil when the gig has no budget and fees were not summed
}
