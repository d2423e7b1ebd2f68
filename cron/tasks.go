package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"handrest/config"
	"handrest/models"

	"github.com/hibiken/asynq"
)

const (
	TypeJobReminder    = "reminder:job"
	TypeStatusOverride = "audit:statusOverride"
)

// TaskClient enqueues background tasks. It implements the booking service's
// AuditSink and the jobs service's ReminderScheduler.
type TaskClient struct {
	client *asynq.Client
}

// NewTaskClient creates an asynq client on the queue Redis DB.
func NewTaskClient() *TaskClient {
	return &TaskClient{client: asynq.NewClient(redisOpts())}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ScheduleJobReminder queues a reminder that fires the morning of the
// booking's scheduled date. A date already in the past fires immediately.
func (t *TaskClient) ScheduleJobReminder(p models.ReminderPayload) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	fireAt := reminderTime(p.ScheduledDate)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	if _, err := t.client.Enqueue(asynq.NewTask(TypeJobReminder, b), opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// RecordOverride queues an admin status-override audit event.
func (t *TaskClient) RecordOverride(ev models.StatusOverrideEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal override event: %w", err)
	}
	if _, err := t.client.Enqueue(asynq.NewTask(TypeStatusOverride, b)); err != nil {
		return fmt.Errorf("failed to enqueue override event: %w", err)
	}
	return nil
}

func reminderTime(scheduledDate string) time.Time {
	day, err := time.ParseInLocation("2006-01-02", scheduledDate, time.Local)
	if err != nil {
		return time.Now()
	}
	fireAt := day.Add(time.Duration(config.AppConfig.ReminderHour) * time.Hour)
	if fireAt.Before(time.Now()) {
		return time.Now()
	}
	return fireAt
}
