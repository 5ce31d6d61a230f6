package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stagelink/config"
	"stagelink/models"
	"stagelink/services/notification"
	"stagelink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNoticeWorker runs the async notice worker in the background.
func InitNoticeWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeNoticeSend, handleNoticeTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[NoticeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoticeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NoticeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNoticeTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.NoticePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("invalid notice payload", zap.Error(err))
		return err
	}

	// Delivery transport (push, email) is a collaborator; the worker's job
	// is to drain the queue and record the hand-off.
	logger.Info("delivering notice",
		zap.String("target", p.Target),
		zap.String("id", p.ID),
		zap.String("gigID", p.GigID),
		zap.String("title", p.Title))
	return nil
}
