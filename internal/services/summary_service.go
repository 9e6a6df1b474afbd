package services

import (
	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// SummaryService computes the cross-ledger business rollup on demand. Nothing
// is cached: every Refresh reads all three ledgers so the figures always
// reflect the latest edits.
type SummaryService struct {
	Trips           repositories.TripRepository
	VehicleExpenses repositories.VehicleExpenseRepository
	OfficeExpenses  repositories.OfficeExpenseRepository
	RequestID       string
}

// Refresh reads the three ledgers in full and rolls them up. An empty or
// missing ledger contributes zero to every figure.
func (s SummaryService) Refresh() (domain.BusinessSummary, error) {
	trips, err := s.Trips.List()
	if err != nil {
		return domain.BusinessSummary{}, domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	vehicle, err := s.VehicleExpenses.List(repositories.VehicleExpenseFilter{})
	if err != nil {
		return domain.BusinessSummary{}, domain.InternalError{Msg: "failed to load vehicle expenses", Err: err}
	}
	office, err := s.OfficeExpenses.List()
	if err != nil {
		return domain.BusinessSummary{}, domain.InternalError{Msg: "failed to load office expenses", Err: err}
	}

	summary := domain.ComputeBusinessSummary(trips, vehicle, office)
	utils.LogEvent(s.RequestID, "summary", "refresh", "grandTotal="+utils.FormatAmount(summary.GrandTotal))
	return summary, nil
}
