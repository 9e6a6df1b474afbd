package services

import (
	"database/sql"
	"strconv"
	"strings"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// OfficeExpenseListResult pairs the monthly grid with its per-column sums.
type OfficeExpenseListResult struct {
	Expenses []domain.OfficeExpenseRecord `json:"expenses"`
	Summary  domain.OfficeLedgerSummary   `json:"summary"`
}

// OfficeExpenseService manages the monthly office overheads ledger.
type OfficeExpenseService struct {
	Repo      repositories.OfficeExpenseRepository
	RequestID string
}

func (s OfficeExpenseService) List() (OfficeExpenseListResult, error) {
	records, err := s.Repo.List()
	if err != nil {
		return OfficeExpenseListResult{}, domain.InternalError{Msg: "failed to load office expenses", Err: err}
	}
	return OfficeExpenseListResult{
		Expenses: records,
		Summary:  domain.SummarizeOfficeLedger(records),
	}, nil
}

func (s OfficeExpenseService) Save(rec domain.OfficeExpenseRecord) (domain.OfficeExpenseRecord, error) {
	rec.Month = strings.TrimSpace(rec.Month)
	id, err := s.Repo.Save(rec)
	if err != nil {
		return domain.OfficeExpenseRecord{}, domain.InternalError{Msg: "failed to save office expense", Err: err}
	}
	rec.ID = id
	rec.Total = rec.RecordTotal()
	utils.LogEvent(s.RequestID, "office-expenses", "save", "id="+strconv.FormatInt(id, 10))
	return rec, nil
}

func (s OfficeExpenseService) Update(id int64, rec domain.OfficeExpenseRecord) (domain.OfficeExpenseRecord, error) {
	rec.Month = strings.TrimSpace(rec.Month)
	if err := s.Repo.Update(id, rec); err != nil {
		if err == sql.ErrNoRows {
			return domain.OfficeExpenseRecord{}, domain.NotFoundError{Resource: "office expense", Err: err}
		}
		return domain.OfficeExpenseRecord{}, domain.InternalError{Msg: "failed to update office expense", Err: err}
	}
	rec.ID = id
	rec.Total = rec.RecordTotal()
	utils.LogEvent(s.RequestID, "office-expenses", "update", "id="+strconv.FormatInt(id, 10))
	return rec, nil
}

func (s OfficeExpenseService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "office expense", Err: err}
		}
		return domain.InternalError{Msg: "failed to delete office expense", Err: err}
	}
	utils.LogEvent(s.RequestID, "office-expenses", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
