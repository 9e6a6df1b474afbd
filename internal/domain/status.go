package domain

// Status is a trip's payment state as stored on the record.
type Status string

const (
	StatusPaid   Status = "Paid"
	StatusUnpaid Status = "Unpaid"
	// StatusInvalid is never persisted: it means the recorded payments exceed
	// the trip amount and the save must be rejected.
	StatusInvalid Status = "Invalid"
)

// paymentTolerance absorbs float drift when comparing money sums.
const paymentTolerance = 0.01

// ClassifyPayment compares the trip amount against everything recorded as
// received (advance + return balance + broker cut). Runs at save time only.
func ClassifyPayment(total, tripAdvance, returnBalance, brokerAmount float64) Status {
	difference := total - (tripAdvance + returnBalance + brokerAmount)
	switch {
	case difference < paymentTolerance && difference > -paymentTolerance:
		return StatusPaid
	case difference > 0:
		return StatusUnpaid
	default:
		return StatusInvalid
	}
}

// ClassifyTrip classifies from the detail mapping directly.
func ClassifyTrip(detail TripDetail) Status {
	return ClassifyPayment(
		detail.Amount(FieldTotalTripAmount),
		detail.Amount(FieldTripAdvance),
		detail.Amount(FieldReturnBalance),
		detail.Amount(FieldBrokerAmount),
	)
}

// UnpaidAmount is the outstanding figure shown in place of "Unpaid" on lists
// and exports: what remains of the trip amount after the advance, the broker
// cut and the return balance. Paid trips report 0.
func UnpaidAmount(rec TripRecord) float64 {
	if rec.Status == StatusPaid {
		return 0
	}
	outstanding := (rec.Total - rec.Detail.Amount(FieldTripAdvance)) -
		rec.Detail.Amount(FieldBrokerAmount) -
		rec.Detail.Amount(FieldReturnBalance)
	if outstanding < 0 {
		return 0
	}
	return outstanding
}
