package models

// PaymentType distinguishes the 20% deposit charged for standard services
// from the full up-front payment required by VIP services.
type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "Deposit"
	PaymentTypeFull    PaymentType = "Full"
)

// PaymentQuote is the amount due entering the payment step. It is a pure
// function of the selected service and is recomputed whenever the selection
// changes, never cached.
type PaymentQuote struct {
	Amount      float64     `json:"amount"`
	PaymentType PaymentType `json:"paymentType"`
}

// PaymentSimulation is the transient result of one simulated payment attempt.
// A failed simulation is an ordinary outcome, not an error: the wizard keeps
// its state and offers a retry.
type PaymentSimulation struct {
	AppointmentID string      `json:"appointmentId"`
	Amount        float64     `json:"amount"`
	PaymentType   PaymentType `json:"paymentType"`
	Success       bool        `json:"success"`
	TransactionID string      `json:"transactionId"`
}
