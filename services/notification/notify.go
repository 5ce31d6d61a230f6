package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"stagelink/config"
	"stagelink/models"
	"stagelink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqNoticeService enqueues notices onto the redis-backed task queue
// consumed by the notice worker.
type AsynqNoticeService struct {
	client *asynq.Client
}

// NewAsynqNoticeService constructs a NoticeService backed by asynq.
func NewAsynqNoticeService() *AsynqNoticeService {
	return &AsynqNoticeService{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisNotifyDB,
		}),
	}
}

func (s *AsynqNoticeService) QueueNotice(ctx context.Context, payload models.NoticePayload) error {
	logger := utils.GetLogger()

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notice payload: %w", err)
	}

	task := asynq.NewTask(TypeNoticeSend, data)
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue notice: %w", err)
	}

	logger.Debug("queued notice",
		zap.String("target", payload.Target),
		zap.String("id", payload.ID),
		zap.String("gigID", payload.GigID))
	return nil
}
