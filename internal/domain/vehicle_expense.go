package domain

// VehicleExpenseRecord is one entry in the vehicle expense ledger: seven
// monetary categories, three of them tagged with a type, plus free remarks.
// Total is always recomputed from the seven amounts on save; the store never
// accepts a user-entered total.
type VehicleExpenseRecord struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	VehicleNo  string  `json:"vehicleNo"`
	FCExpense  float64 `json:"fcExpense"`
	TyreAmount float64 `json:"tyreAmount"`
	TyreType   string  `json:"tyreType"`
	Tax        float64 `json:"tax"`
	TaxType    string  `json:"taxType"`
	SpareWork  float64 `json:"spareWork"`
	SpareType  string  `json:"spareType"`
	Loan       float64 `json:"loan"`
	Insurance  float64 `json:"insurance"`
	Others     float64 `json:"others"`
	Remarks    string  `json:"remarks"`
	Total      float64 `json:"total"`
}

// RecordTotal sums the seven monetary categories of one record.
func (r VehicleExpenseRecord) RecordTotal() float64 {
	return r.FCExpense + r.TyreAmount + r.Tax + r.SpareWork +
		r.Loan + r.Insurance + r.Others
}

// VehicleExpenseGrandTotal sums record totals over whatever set the caller
// passes in; date and vehicle filters are applied upstream. Recomputes each
// record's total rather than trusting the stored column.
func VehicleExpenseGrandTotal(records []VehicleExpenseRecord) float64 {
	grand := 0.0
	for _, r := range records {
		grand += r.RecordTotal()
	}
	return grand
}
