package notification

import (
	"context"

	"stagelink/models"
)

// TypeNoticeSend is the asynq task type for gig life-cycle notices.
const TypeNoticeSend = "notice:send"

// NoticeService queues gig life-cycle notices (hire, rejection, close) for
// asynchronous delivery. The delivery transport itself is a collaborator
// behind the queue boundary.
type NoticeService interface {
	QueueNotice(ctx context.Context, payload models.NoticePayload) error
}
