package appointment

import (
	"testing"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityEmptyDayIsFullyOpen(t *testing.T) {
	svc, _ := newTestService()
	day, _ := ParseDay("2026-09-15")

	slots, err := svc.Availability("b1", day)
	require.NoError(t, err)
	require.Len(t, slots, len(utils.BookingTimeSlots))
	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
		assert.Equal(t, "b1", slot.BarberID)
	}
}

func TestAvailabilityBlocksBookedSlots(t *testing.T) {
	svc, repo := newTestService()
	day, _ := ParseDay("2026-09-15")

	when := time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local)
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", BarberID: "b1", ServiceID: "haircut",
		AppointmentDate: when, Status: models.AppointmentConfirmed,
	}

	slots, err := svc.Availability("b1", day)
	require.NoError(t, err)
	for _, slot := range slots {
		if slot.Time == "10:30" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.Time)
		}
	}
}

func TestAvailabilityLongServiceSpansMultipleSlots(t *testing.T) {
	svc, repo := newTestService()
	day, _ := ParseDay("2026-09-15")

	// 90 minute VIP service starting at 14:00 blocks three half-hour slots.
	when := time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local)
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", BarberID: "owner", ServiceID: "vip-room",
		AppointmentDate: when, Status: models.AppointmentConfirmed,
	}

	slots, err := svc.Availability("owner", day)
	require.NoError(t, err)

	blocked := map[string]bool{"14:00": true, "14:30": true, "15:00": true}
	for _, slot := range slots {
		assert.Equal(t, !blocked[slot.Time], slot.Available, "slot %s", slot.Time)
	}
}

func TestAvailabilityIgnoresCancelledAppointments(t *testing.T) {
	svc, repo := newTestService()
	day, _ := ParseDay("2026-09-15")

	when := time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local)
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", BarberID: "b1", ServiceID: "haircut",
		AppointmentDate: when, Status: models.AppointmentCancelled,
	}

	slots, err := svc.Availability("b1", day)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
	}
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("09:00"))
	assert.True(t, ValidSlot("20:30"))
	assert.False(t, ValidSlot("21:00"))
	assert.False(t, ValidSlot("08:30"))
	assert.False(t, ValidSlot("10:15"))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.September, day.Month())
	assert.Equal(t, 15, day.Day())

	_, err = ParseDay("15/09/2026")
	assert.Error(t, err)
}
