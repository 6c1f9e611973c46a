package booking

import (
	"math/rand"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fastSimulator returns a simulator with the delay squeezed out so the
// statistical tests run quickly.
func fastSimulator(seed int64, successRate float64) *PaymentSimulator {
	return &PaymentSimulator{
		logger:      zap.NewNop(),
		rng:         rand.New(rand.NewSource(seed)),
		minDelay:    0,
		maxDelay:    0,
		successRate: successRate,
	}
}

func TestSimulateCarriesRequestThrough(t *testing.T) {
	sim := fastSimulator(1, 1.0)

	res := sim.Simulate("appt-1", 16.0, models.PaymentTypeDeposit)
	assert.Equal(t, "appt-1", res.AppointmentID)
	assert.Equal(t, 16.0, res.Amount)
	assert.Equal(t, models.PaymentTypeDeposit, res.PaymentType)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.TransactionID)
}

func TestSimulateSuccessRateIsRoughlyNinetyPercent(t *testing.T) {
	sim := fastSimulator(42, 0.9)

	const attempts = 1000
	successes := 0
	for i := 0; i < attempts; i++ {
		if sim.Simulate("appt", 10, models.PaymentTypeDeposit).Success {
			successes++
		}
	}

	rate := float64(successes) / attempts
	assert.InDelta(t, 0.9, rate, 0.05, "observed success rate %.3f", rate)
}

func TestSimulateTransactionIDsAreUnique(t *testing.T) {
	sim := fastSimulator(7, 0.5)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := sim.Simulate("appt", 10, models.PaymentTypeFull).TransactionID
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

func TestSimulateFailureIsAResultNotAnError(t *testing.T) {
	sim := fastSimulator(3, 0.0)

	res := sim.Simulate("appt-1", 150.0, models.PaymentTypeFull)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.TransactionID, "declined attempts still get a transaction id")
}

func TestNewPaymentSimulatorProductionProfile(t *testing.T) {
	sim := NewPaymentSimulator(zap.NewNop())
	assert.Equal(t, 2*time.Second, sim.minDelay)
	assert.Equal(t, 3*time.Second, sim.maxDelay)
	assert.Equal(t, 0.9, sim.successRate)
}
