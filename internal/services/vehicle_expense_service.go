package services

import (
	"database/sql"
	"strconv"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// VehicleExpenseListResult is the filtered ledger view plus its grand total.
type VehicleExpenseListResult struct {
	Expenses   []domain.VehicleExpenseRecord `json:"expenses"`
	GrandTotal float64                       `json:"grandTotal"`
}

// VehicleExpenseService manages the per-vehicle expense ledger. Record totals
// are store-computed, so the grand total over a filtered view stays consistent
// with whatever the client sent.
type VehicleExpenseService struct {
	Repo      repositories.VehicleExpenseRepository
	RequestID string
}

// List returns the records matching the filter with the grand total over that
// same filtered set. An empty filter returns the whole ledger.
func (s VehicleExpenseService) List(f repositories.VehicleExpenseFilter) (VehicleExpenseListResult, error) {
	f.StartDate = utils.NormalizeDate(f.StartDate)
	f.EndDate = utils.NormalizeDate(f.EndDate)
	records, err := s.Repo.List(f)
	if err != nil {
		return VehicleExpenseListResult{}, domain.InternalError{Msg: "failed to load vehicle expenses", Err: err}
	}
	return VehicleExpenseListResult{
		Expenses:   records,
		GrandTotal: domain.VehicleExpenseGrandTotal(records),
	}, nil
}

func (s VehicleExpenseService) Save(rec domain.VehicleExpenseRecord) (domain.VehicleExpenseRecord, error) {
	rec.Date = utils.NormalizeDate(rec.Date)
	id, err := s.Repo.Save(rec)
	if err != nil {
		return domain.VehicleExpenseRecord{}, domain.InternalError{Msg: "failed to save vehicle expense", Err: err}
	}
	rec.ID = id
	rec.Total = rec.RecordTotal()
	utils.LogEvent(s.RequestID, "vehicle-expenses", "save", "id="+strconv.FormatInt(id, 10))
	return rec, nil
}

func (s VehicleExpenseService) Update(id int64, rec domain.VehicleExpenseRecord) (domain.VehicleExpenseRecord, error) {
	rec.Date = utils.NormalizeDate(rec.Date)
	if err := s.Repo.Update(id, rec); err != nil {
		if err == sql.ErrNoRows {
			return domain.VehicleExpenseRecord{}, domain.NotFoundError{Resource: "vehicle expense", Err: err}
		}
		return domain.VehicleExpenseRecord{}, domain.InternalError{Msg: "failed to update vehicle expense", Err: err}
	}
	rec.ID = id
	rec.Total = rec.RecordTotal()
	utils.LogEvent(s.RequestID, "vehicle-expenses", "update", "id="+strconv.FormatInt(id, 10))
	return rec, nil
}

func (s VehicleExpenseService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "vehicle expense", Err: err}
		}
		return domain.InternalError{Msg: "failed to delete vehicle expense", Err: err}
	}
	utils.LogEvent(s.RequestID, "vehicle-expenses", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
