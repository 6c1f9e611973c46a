package appointment

import (
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"
)

const slotMinutes = 30

// Availability builds the half-hour slot grid for a barber on a given day.
// Each non-cancelled appointment blocks the slots its service duration
// covers, rounded up to whole slots.
func (s *DefaultAppointmentService) Availability(barberID string, day time.Time) ([]models.TimeSlot, error) {
	appts, err := s.Repo.GetByBarberAndDate(barberID, day)
	if err != nil {
		return nil, err
	}

	blocked := make(map[int]bool)
	for _, appt := range appts {
		start := slotIndex(appt.AppointmentDate.Format("15:04"))
		if start < 0 {
			continue
		}
		span := 1
		if svc, err := s.Services.GetByID(appt.ServiceID); err == nil && svc.DurationMinutes > 0 {
			span = (svc.DurationMinutes + slotMinutes - 1) / slotMinutes
		}
		for i := 0; i < span; i++ {
			blocked[start+i] = true
		}
	}

	slots := make([]models.TimeSlot, 0, len(utils.BookingTimeSlots))
	for i, t := range utils.BookingTimeSlots {
		slots = append(slots, models.TimeSlot{
			Time:      t,
			Available: !blocked[i],
			BarberID:  barberID,
		})
	}
	return slots, nil
}

// ValidSlot reports whether a time string is one of the offered slots.
func ValidSlot(t string) bool {
	return slotIndex(t) >= 0
}

func slotIndex(t string) int {
	for i, slot := range utils.BookingTimeSlots {
		if slot == t {
			return i
		}
	}
	return -1
}

// ParseDay parses a "2006-01-02" date used by availability queries.
func ParseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, nil
}
