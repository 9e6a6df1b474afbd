package domain

// BusinessSummary is the cross-ledger rollup behind the "Refresh Totals"
// button: trip figures over all trips, vehicle and office expense totals over
// all records, combined into one grand total.
//
// Grand Total = Trip Profit - (Vehicle Expense + Office Expense)
type BusinessSummary struct {
	TripExpenseTotal    float64 `json:"tripExpenseTotal"`
	TripProfitTotal     float64 `json:"tripProfitTotal"`
	VehicleExpenseTotal float64 `json:"vehicleExpenseTotal"`
	OfficeExpenseTotal  float64 `json:"officeExpenseTotal"`
	GrandTotal          float64 `json:"grandTotal"`
}

// TripLedgerSummary is the totals strip under the trip grid: column sums over
// the visible rows plus the outstanding amount across Unpaid trips.
type TripLedgerSummary struct {
	DriverAmount float64 `json:"driverAmount"`
	Expense      float64 `json:"expense"`
	Profit       float64 `json:"profit"`
	Total        float64 `json:"total"`
	Unpaid       float64 `json:"unpaid"`
}

// SummarizeTripLedger sums the projections over the given trips. Only trips
// still classified Unpaid contribute to the outstanding figure.
func SummarizeTripLedger(trips []TripRecord) TripLedgerSummary {
	var s TripLedgerSummary
	for _, t := range trips {
		s.DriverAmount += t.DriverAmount
		s.Expense += t.Expense
		s.Profit += t.Profit
		s.Total += t.Total
		if t.Status == StatusUnpaid {
			s.Unpaid += UnpaidAmount(t)
		}
	}
	return s
}

// ComputeBusinessSummary rolls the three ledgers up. Each input slice is the
// full, unfiltered ledger; any of them may be empty and contributes 0.
// The office figure sums every month record's four fields, not the
// monthly ledger's "Office Rent" column alone.
func ComputeBusinessSummary(trips []TripRecord, vehicleExpenses []VehicleExpenseRecord, officeExpenses []OfficeExpenseRecord) BusinessSummary {
	var s BusinessSummary
	for _, t := range trips {
		s.TripExpenseTotal += t.Expense
		s.TripProfitTotal += t.Profit
	}
	s.VehicleExpenseTotal = VehicleExpenseGrandTotal(vehicleExpenses)
	for _, m := range officeExpenses {
		s.OfficeExpenseTotal += m.RecordTotal()
	}
	s.GrandTotal = s.TripProfitTotal - (s.VehicleExpenseTotal + s.OfficeExpenseTotal)
	return s
}
