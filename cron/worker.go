package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"barberbook/config"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(users))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		notification := models.Notification{
			ID:      uuid.New().String(),
			Type:    "appointment_reminder",
			Message: p.Body,
			Data: map[string]any{
				"appointmentId": p.AppointmentID,
				"fireDate":      p.FireDate,
				"title":         p.Title,
			},
			CreatedAt: time.Now(),
		}

		if err := users.PushNotification(p.CustomerID, notification); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder for %s: %v", p.AppointmentID, err)
			return err
		}

		log.Printf("[ReminderHandler] reminder delivered for appointment %s", p.AppointmentID)
		return nil
	}
}
