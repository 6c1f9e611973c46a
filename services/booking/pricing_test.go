package booking

import (
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
)

func TestQuoteFullPaymentForVIPService(t *testing.T) {
	vip := models.Service{
		ID:                  "vip-room",
		Price:               150,
		ServiceType:         models.ServiceTypeVIPRoom,
		RequiresFullPayment: true,
	}

	q := Quote(vip)
	assert.Equal(t, 150.0, q.Amount)
	assert.Equal(t, models.PaymentTypeFull, q.PaymentType)
}

func TestQuoteDepositForStandardService(t *testing.T) {
	haircut := models.Service{ID: "haircut", Price: 80, ServiceType: models.ServiceTypeRegular}

	q := Quote(haircut)
	assert.Equal(t, 16.0, q.Amount)
	assert.Equal(t, models.PaymentTypeDeposit, q.PaymentType)
}

func TestQuoteDepositRoundsToCents(t *testing.T) {
	cases := []struct {
		price float64
		want  float64
	}{
		{49.99, 10.0},  // 9.998 rounds up
		{33.33, 6.67},  // 6.666 rounds up
		{10.01, 2.0},   // 2.002 rounds down
		{0.01, 0.0},    // 0.002 rounds down
		{124.95, 24.99},
	}
	for _, tc := range cases {
		q := Quote(models.Service{Price: tc.price})
		assert.Equal(t, tc.want, q.Amount, "price %.2f", tc.price)
	}
}

func TestQuoteIgnoresServiceTypeWithoutFullPaymentFlag(t *testing.T) {
	// The flag decides, not the type: a VIP entry missing the flag still
	// quotes a deposit.
	svc := models.Service{Price: 100, ServiceType: models.ServiceTypeVIPCar}
	q := Quote(svc)
	assert.Equal(t, 20.0, q.Amount)
	assert.Equal(t, models.PaymentTypeDeposit, q.PaymentType)
}
