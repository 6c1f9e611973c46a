package booking

import (
	"math"

	"barberbook/models"
)

// DepositRate is the fraction of the service price charged up front for
// standard services.
const DepositRate = 0.20

// Quote computes the amount due entering the payment step. Services flagged
// requiresFullPayment (the VIP offerings) charge the full price; everything
// else charges a 20% deposit rounded to currency precision. The quote is a
// pure function of the service and must be recomputed whenever the selected
// service changes.
func Quote(svc models.Service) models.PaymentQuote {
	if svc.RequiresFullPayment {
		return models.PaymentQuote{Amount: svc.Price, PaymentType: models.PaymentTypeFull}
	}
	amount := math.Round(svc.Price*DepositRate*100) / 100
	return models.PaymentQuote{Amount: amount, PaymentType: models.PaymentTypeDeposit}
}
