package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"barberbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentSimulator stands in for a real payment gateway: it sleeps for a
// bounded random interval to model network latency, then resolves success
// with a fixed probability. A failed simulation is a normal result variant,
// not an error — the wizard branches on Success and offers a retry. The
// simulator never mutates caller state and has no cancellation path.
type PaymentSimulator struct {
	logger      *zap.Logger
	mu          sync.Mutex
	rng         *rand.Rand
	minDelay    time.Duration
	maxDelay    time.Duration
	successRate float64
}

// NewPaymentSimulator creates a simulator with the production profile:
// a 2–3 second delay and a 90% success rate.
func NewPaymentSimulator(logger *zap.Logger) *PaymentSimulator {
	return &PaymentSimulator{
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		minDelay:    2 * time.Second,
		maxDelay:    3 * time.Second,
		successRate: 0.9,
	}
}

// Simulate runs one payment attempt for the given amount and payment type.
// Every call produces a distinct transaction identifier regardless of outcome.
func (p *PaymentSimulator) Simulate(appointmentID string, amount float64, paymentType models.PaymentType) models.PaymentSimulation {
	p.mu.Lock()
	delay := p.minDelay
	if span := p.maxDelay - p.minDelay; span > 0 {
		delay += time.Duration(p.rng.Int63n(int64(span)))
	}
	success := p.rng.Float64() < p.successRate
	p.mu.Unlock()

	time.Sleep(delay)

	result := models.PaymentSimulation{
		AppointmentID: appointmentID,
		Amount:        amount,
		PaymentType:   paymentType,
		Success:       success,
		TransactionID: newTransactionID(),
	}

	p.logger.Info("payment simulation settled",
		zap.String("transactionId", result.TransactionID),
		zap.Float64("amount", amount),
		zap.String("paymentType", string(paymentType)),
		zap.Bool("success", success),
	)
	return result
}

// newTransactionID builds a timestamped identifier with a random suffix,
// unique per call.
func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}
