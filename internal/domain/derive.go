package domain

import "kts-backend/internal/utils"

// Commission paid to the driver as a share of the total trip amount.
const DriverCommissionRate = 0.11

// expenseFields are the ten categories summed into a trip's expense
// projection at save time.
var expenseFields = []string{
	FieldPooja, FieldDiesel, FieldRTOPC, FieldToll, FieldDriverAmount,
	FieldCleanerAmount, FieldBrokerAmount, FieldLoadAmount,
	FieldUnloadAmount, FieldOthers,
}

// balanceInputs are the fields whose edits require a Driver Balance refresh.
var balanceInputs = map[string]bool{
	FieldDriverAmount:  true,
	FieldDriverAdvance: true,
	FieldPooja:         true,
	FieldRTOPC:         true,
	FieldLoadAmount:    true,
	FieldUnloadAmount:  true,
	FieldOthers:        true,
	FieldCleanerAmount: true,
}

// balanceAddFields are the reimbursable categories added on top of the
// driver's commission-minus-advance when computing Driver Balance.
var balanceAddFields = []string{
	FieldPooja, FieldRTOPC, FieldLoadAmount,
	FieldUnloadAmount, FieldOthers, FieldCleanerAmount,
}

// Recalculate applies the derivation rules to a detail mapping after one field
// changed, preserving the dependency order the entry form wires them in:
// KM inputs feed KM Travelled, the trip amount feeds Driver Amount (11%
// commission), and Driver Amount in turn feeds Driver Balance. The input
// mapping is not modified; running twice on the same input yields the same
// output.
func Recalculate(detail TripDetail, changedField string) TripDetail {
	d := detail.Clone()
	switch {
	case changedField == FieldStartKM || changedField == FieldEndKM:
		recalcKMTravelled(d)
	case changedField == FieldTotalTripAmount:
		recalcDriverAmount(d)
		recalcDriverBalance(d)
	case balanceInputs[changedField]:
		recalcDriverBalance(d)
	}
	return d
}

// RecalculateAll refreshes every derived field, in dependency order. The entry
// form runs this once when a detail dialog opens so stale deriveds heal.
func RecalculateAll(detail TripDetail) TripDetail {
	d := detail.Clone()
	recalcKMTravelled(d)
	recalcDriverAmount(d)
	recalcDriverBalance(d)
	return d
}

func recalcKMTravelled(d TripDetail) {
	travelled := d.Amount(FieldEndKM) - d.Amount(FieldStartKM)
	if travelled < 0 {
		travelled = 0
	}
	d[FieldKMTravelled] = utils.FormatAmount(travelled)
}

func recalcDriverAmount(d TripDetail) {
	total := d.Amount(FieldTotalTripAmount)
	d[FieldDriverAmount] = utils.FormatAmount(utils.RoundMoney(total * DriverCommissionRate))
}

func recalcDriverBalance(d TripDetail) {
	balance := d.Amount(FieldDriverAmount) - d.Amount(FieldDriverAdvance)
	for _, f := range balanceAddFields {
		balance += d.Amount(f)
	}
	d[FieldDriverBalance] = utils.FormatAmount(balance)
}

// Projection holds the trip grid columns derived from the detail mapping.
type Projection struct {
	Total        float64 `json:"total"`
	Expense      float64 `json:"expense"`
	Profit       float64 `json:"profit"`
	DriverAmount float64 `json:"driverAmount"`
}

// Finalize computes the save-time projections from the detail mapping:
// total mirrors Total Trip Amount, expense sums the ten expense categories,
// profit is their difference. Internal sums keep full float precision; only
// the detail text is rounded.
func Finalize(detail TripDetail) Projection {
	total := detail.Amount(FieldTotalTripAmount)
	expense := 0.0
	for _, f := range expenseFields {
		expense += detail.Amount(f)
	}
	return Projection{
		Total:        total,
		Expense:      expense,
		Profit:       total - expense,
		DriverAmount: detail.Amount(FieldDriverAmount),
	}
}

// Apply writes the projections onto a trip record.
func (p Projection) Apply(rec *TripRecord) {
	rec.Total = p.Total
	rec.Expense = p.Expense
	rec.Profit = p.Profit
	rec.DriverAmount = p.DriverAmount
}
