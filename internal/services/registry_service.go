package services

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// ExpiringDocument flags one statutory document on one vehicle that lapses
// within the lookahead window, or has already lapsed.
type ExpiringDocument struct {
	VehicleNo  string `json:"vehicleNo"`
	Document   string `json:"document"`
	ExpiresOn  string `json:"expiresOn"`
	DaysLeft   int    `json:"daysLeft"`
	Lapsed     bool   `json:"lapsed"`
	DriverName string `json:"driverName"`
}

// RegistryService manages the vehicle and driver registry. Entries are keyed
// by vehicle number: saving an existing number overwrites that entry.
type RegistryService struct {
	Repo      repositories.RegistryRepository
	RequestID string
}

func (s RegistryService) List() ([]domain.VehicleDriverDetail, error) {
	records, err := s.Repo.ListAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load registry", Err: err}
	}
	return records, nil
}

func (s RegistryService) Get(vehicleNo string) (domain.VehicleDriverDetail, error) {
	rec, err := s.Repo.GetByVehicleNo(strings.TrimSpace(vehicleNo))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.VehicleDriverDetail{}, domain.NotFoundError{Resource: "vehicle", Err: err}
		}
		return domain.VehicleDriverDetail{}, domain.InternalError{Msg: "failed to load registry entry", Err: err}
	}
	return rec, nil
}

// Save upserts one registry entry. The loan-remaining figure is rederived
// here; a client-sent value is discarded.
func (s RegistryService) Save(rec domain.VehicleDriverDetail) (domain.VehicleDriverDetail, error) {
	rec.VehicleNo = strings.TrimSpace(rec.VehicleNo)
	if rec.VehicleNo == "" {
		return domain.VehicleDriverDetail{}, domain.ValidationError{Field: "vehicleNo", Msg: "vehicle number is required"}
	}
	for _, p := range []*string{
		&rec.RegistrationDate, &rec.FitnessUpto, &rec.TaxUpto, &rec.InsuranceUpto,
		&rec.PUCCUpto, &rec.PermitUpto, &rec.NationalPermitUpto, &rec.DateOfJoining,
	} {
		*p = utils.NormalizeDate(*p)
	}
	rec.DeriveLoanRemaining()

	id, err := s.Repo.Upsert(rec)
	if err != nil {
		return domain.VehicleDriverDetail{}, domain.InternalError{Msg: "failed to save registry entry", Err: err}
	}
	rec.ID = id
	utils.LogEvent(s.RequestID, "registry", "save", "vehicle="+rec.VehicleNo)
	return rec, nil
}

func (s RegistryService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "registry entry", Err: err}
		}
		return domain.InternalError{Msg: "failed to delete registry entry", Err: err}
	}
	utils.LogEvent(s.RequestID, "registry", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}

// Expiring scans every registry entry's statutory dates and reports the
// documents lapsing within the next withinDays days, already-lapsed ones
// included. Blank and unparsable dates are skipped.
func (s RegistryService) Expiring(withinDays int) ([]ExpiringDocument, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	records, err := s.Repo.ListAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load registry", Err: err}
	}

	today := time.Now().In(time.Local)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	cutoff := today.AddDate(0, 0, withinDays)

	out := []ExpiringDocument{}
	for _, rec := range records {
		for _, doc := range []struct {
			name string
			date string
		}{
			{"Fitness", rec.FitnessUpto},
			{"Tax", rec.TaxUpto},
			{"Insurance", rec.InsuranceUpto},
			{"P.U.C.C", rec.PUCCUpto},
			{"Permit", rec.PermitUpto},
			{"National Permit", rec.NationalPermitUpto},
		} {
			expiry, err := utils.ParseDate(doc.date)
			if err != nil {
				continue
			}
			if expiry.After(cutoff) {
				continue
			}
			days := int(expiry.Sub(today).Hours() / 24)
			out = append(out, ExpiringDocument{
				VehicleNo:  rec.VehicleNo,
				Document:   doc.name,
				ExpiresOn:  utils.FormatDate(expiry),
				DaysLeft:   days,
				Lapsed:     expiry.Before(today),
				DriverName: rec.DriverName,
			})
		}
	}
	return out, nil
}
