package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"barberbook/config"
	"barberbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// NewReminderTask builds the asynq task for one appointment reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders on the Redis-backed queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a scheduler against the configured reminder queue.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})}
}

// ScheduleAppointmentReminder enqueues a reminder 24h before the appointment.
// Appointments starting sooner than the lead time get no reminder.
func (s *Scheduler) ScheduleAppointmentReminder(appt *models.Appointment) error {
	fireAt := appt.AppointmentDate.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		CustomerID:    appt.CustomerID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment on %s is coming up.", appt.AppointmentDate.Format("Mon, 02 Jan 15:04")),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
