package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"handrest/models"
	"handrest/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitWorker runs the background worker processing job reminders and
// status-override audit events.
func InitWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeJobReminder, handleJobReminder)
	mux.HandleFunc(TypeStatusOverride, handleStatusOverride)

	go func() {
		log.Println("[Worker] Starting background worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleJobReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	// Push delivery is out of scope for the core; the worker is the
	// delivery seam and for now reports through the structured log.
	utils.GetLogger().Info("job reminder due",
		zap.String("bookingNumber", p.BookingNumber),
		zap.String("scheduledDate", p.ScheduledDate),
		zap.String("scheduledTime", p.ScheduledTime),
		zap.Strings("staff", p.StaffUserIDs))
	return nil
}

func handleStatusOverride(ctx context.Context, task *asynq.Task) error {
	var ev models.StatusOverrideEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		utils.GetLogger().Error("invalid override payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Warn("admin status override recorded",
		zap.String("bookingNumber", ev.BookingNumber),
		zap.String("actor", ev.ActorID),
		zap.String("actorRole", string(ev.ActorRole)),
		zap.String("from", string(ev.FromStatus)),
		zap.String("to", string(ev.ToStatus)),
		zap.Time("at", ev.At))
	return nil
}
