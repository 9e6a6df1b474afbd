package services

import (
	"database/sql"
	"strconv"
	"strings"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// TripInput is what the trip form submits: the grid identity columns plus the
// raw detail mapping. Every derived value is recomputed server-side.
type TripInput struct {
	Date         string            `json:"date"`
	VehicleNo    string            `json:"vehicleNo"`
	Location     string            `json:"location"`
	BrokerOffice string            `json:"brokerOffice"`
	Detail       domain.TripDetail `json:"detail"`
}

// TripListResult pairs the ledger rows with the totals strip.
type TripListResult struct {
	Trips   []domain.TripRecord      `json:"trips"`
	Summary domain.TripLedgerSummary `json:"summary"`
}

// TripService runs the trip ledger operations: derivation, payment
// classification and persistence. Classification runs at save time only; an
// Invalid classification rejects the save and nothing is written.
type TripService struct {
	Repo      repositories.TripRepository
	RequestID string
}

// Derive is the "field-set changed" event: one edited key in, the recomputed
// detail mapping out. Pure; nothing is persisted.
func (s TripService) Derive(detail domain.TripDetail, changedField string) domain.TripDetail {
	if strings.TrimSpace(changedField) == "" {
		return domain.RecalculateAll(detail)
	}
	return domain.Recalculate(detail, changedField)
}

// List returns all trips with projections recomputed from the detail blob, so
// a stale stored projection heals on read, plus the ledger totals strip.
func (s TripService) List() (TripListResult, error) {
	trips, err := s.Repo.List()
	if err != nil {
		return TripListResult{}, domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	for i := range trips {
		if len(trips[i].Detail) == 0 {
			continue
		}
		domain.Finalize(trips[i].Detail).Apply(&trips[i])
	}
	return TripListResult{Trips: trips, Summary: domain.SummarizeTripLedger(trips)}, nil
}

// Save derives, classifies and persists a new trip.
func (s TripService) Save(in TripInput) (domain.TripRecord, error) {
	rec, err := s.prepare(in)
	if err != nil {
		return domain.TripRecord{}, err
	}
	id, err := s.Repo.Save(rec)
	if err != nil {
		return domain.TripRecord{}, domain.InternalError{Msg: "failed to save trip", Err: err}
	}
	rec.ID = id
	utils.LogEvent(s.RequestID, "trips", "save", "id="+strconv.FormatInt(id, 10)+" status="+string(rec.Status))
	return rec, nil
}

// Update re-derives and re-classifies, then overwrites the stored row. The
// stored record is untouched when classification rejects the input.
func (s TripService) Update(id int64, in TripInput) (domain.TripRecord, error) {
	rec, err := s.prepare(in)
	if err != nil {
		return domain.TripRecord{}, err
	}
	rec.ID = id
	if err := s.Repo.Update(id, rec); err != nil {
		if err == sql.ErrNoRows {
			return domain.TripRecord{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return domain.TripRecord{}, domain.InternalError{Msg: "failed to update trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "update", "id="+strconv.FormatInt(id, 10)+" status="+string(rec.Status))
	return rec, nil
}

// Delete removes a trip permanently after the UI's confirm step.
func (s TripService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "trip", Err: err}
		}
		return domain.InternalError{Msg: "failed to delete trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}

// prepare runs the save-time pipeline: refresh deriveds, project, classify.
func (s TripService) prepare(in TripInput) (domain.TripRecord, error) {
	detail := in.Detail
	if detail == nil {
		detail = domain.TripDetail{}
	}
	detail = domain.RecalculateAll(detail)

	status := domain.ClassifyTrip(detail)
	if status == domain.StatusInvalid {
		return domain.TripRecord{}, domain.ValidationError{
			Field: "payment",
			Msg:   "recorded payments exceed the trip amount, check the inputs",
		}
	}

	rec := domain.TripRecord{
		Date:         utils.NormalizeDate(in.Date),
		VehicleNo:    strings.TrimSpace(in.VehicleNo),
		Location:     strings.TrimSpace(in.Location),
		BrokerOffice: strings.TrimSpace(in.BrokerOffice),
		Status:       status,
		Detail:       detail,
	}
	domain.Finalize(detail).Apply(&rec)
	return rec, nil
}
