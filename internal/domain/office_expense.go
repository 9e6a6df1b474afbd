package domain

// OfficeExpenseRecord is one month's office overheads: four monetary fields
// under a free-form month label. Total is store-computed on every write.
type OfficeExpenseRecord struct {
	ID            int64   `json:"id"`
	Month         string  `json:"month"`
	CurrentBill   float64 `json:"currentBill"`
	ManagerSalary float64 `json:"managerSalary"`
	OfficeRent    float64 `json:"officeRent"`
	Others        float64 `json:"others"`
	Total         float64 `json:"total"`
}

// RecordTotal sums the four monetary fields of one month record.
func (r OfficeExpenseRecord) RecordTotal() float64 {
	return r.CurrentBill + r.ManagerSalary + r.OfficeRent + r.Others
}

// OfficeLedgerSummary carries the ledger-wide column sums shown under the
// monthly grid, one per field, plus their grand total.
type OfficeLedgerSummary struct {
	CurrentBill   float64 `json:"currentBill"`
	ManagerSalary float64 `json:"managerSalary"`
	OfficeRent    float64 `json:"officeRent"`
	Others        float64 `json:"others"`
	GrandTotal    float64 `json:"grandTotal"`
}

// SummarizeOfficeLedger computes the column sums over the visible month
// records. The empty set yields all zeros.
func SummarizeOfficeLedger(records []OfficeExpenseRecord) OfficeLedgerSummary {
	var s OfficeLedgerSummary
	for _, r := range records {
		s.CurrentBill += r.CurrentBill
		s.ManagerSalary += r.ManagerSalary
		s.OfficeRent += r.OfficeRent
		s.Others += r.Others
	}
	s.GrandTotal = s.CurrentBill + s.ManagerSalary + s.OfficeRent + s.Others
	return s
}
