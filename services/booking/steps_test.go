package booking

import (
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() models.BookingForm {
	return models.BookingForm{
		Step:            models.StepPayment,
		ServiceID:       "svc-1",
		BarberID:        "brb-1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
		PaymentMethod:   "card",
	}
}

func TestStepComplete(t *testing.T) {
	cases := []struct {
		name string
		form models.BookingForm
		step int
		want bool
	}{
		{"service missing", models.BookingForm{}, models.StepSelectService, false},
		{"service chosen", models.BookingForm{ServiceID: "svc-1"}, models.StepSelectService, true},
		{"barber missing", models.BookingForm{ServiceID: "svc-1"}, models.StepSelectBarber, false},
		{"barber chosen", models.BookingForm{BarberID: "brb-1"}, models.StepSelectBarber, true},
		{"date without time", models.BookingForm{AppointmentDate: "2026-09-15"}, models.StepSelectDateTime, false},
		{"time without date", models.BookingForm{AppointmentTime: "10:30"}, models.StepSelectDateTime, false},
		{"date and time", models.BookingForm{AppointmentDate: "2026-09-15", AppointmentTime: "10:30"}, models.StepSelectDateTime, true},
		{"summary always complete", models.BookingForm{}, models.StepSummary, true},
		{"payment method missing", models.BookingForm{}, models.StepPayment, false},
		{"payment method chosen", models.BookingForm{PaymentMethod: "card"}, models.StepPayment, true},
		{"unknown step", models.BookingForm{}, 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StepComplete(tc.form, tc.step))
		})
	}
}

func TestAdvanceRequiresCompleteStep(t *testing.T) {
	f := models.NewBookingForm()
	require.Equal(t, models.StepSelectService, f.Step)

	err := Advance(&f)
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, models.StepSelectService, f.Step)

	f.ServiceID = "svc-1"
	require.NoError(t, Advance(&f))
	assert.Equal(t, models.StepSelectBarber, f.Step)
}

func TestAdvanceStopsAtPaymentStep(t *testing.T) {
	f := completeForm()
	require.NoError(t, Advance(&f))
	assert.Equal(t, models.StepPayment, f.Step)
}

func TestRetreatIsUnconditionalAndFloorsAtOne(t *testing.T) {
	f := models.BookingForm{Step: models.StepSelectDateTime}
	Retreat(&f)
	assert.Equal(t, models.StepSelectBarber, f.Step)

	f.Step = models.StepSelectService
	Retreat(&f)
	assert.Equal(t, models.StepSelectService, f.Step)
}

func TestRetreatPreservesSelections(t *testing.T) {
	f := completeForm()
	Retreat(&f)
	assert.Equal(t, "svc-1", f.ServiceID)
	assert.Equal(t, "brb-1", f.BarberID)
	assert.Equal(t, "2026-09-15", f.AppointmentDate)
}

func TestJumpToRedirectsOutOfRangeToStepOne(t *testing.T) {
	f := models.BookingForm{Step: models.StepSummary}

	JumpTo(&f, 0)
	assert.Equal(t, models.StepSelectService, f.Step)

	JumpTo(&f, 6)
	assert.Equal(t, models.StepSelectService, f.Step)

	JumpTo(&f, models.StepSelectDateTime)
	assert.Equal(t, models.StepSelectDateTime, f.Step)
}

func TestResetReturnsInitialState(t *testing.T) {
	f := completeForm()
	Reset(&f)
	assert.Equal(t, models.NewBookingForm(), f)
}

func TestCompletionState(t *testing.T) {
	got := CompletionState(models.BookingForm{ServiceID: "svc-1", BarberID: "brb-1"})
	assert.Equal(t, map[int]bool{
		models.StepSelectService:  true,
		models.StepSelectBarber:   true,
		models.StepSelectDateTime: false,
		models.StepSummary:        true,
		models.StepPayment:        false,
	}, got)
}
