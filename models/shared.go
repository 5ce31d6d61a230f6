package models

// NoticePayload is the asynq task payload for gig life-cycle notices
// (hire, rejection, close) queued for delivery to a musician or company.
type NoticePayload struct {
	ID     string `json:"id"`     // musicianId or companyId
	GigID  string `json:"gigId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Target string `json:"target"` // "musician" or "company"
}
