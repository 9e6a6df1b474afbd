package repositories

import (
	"database/sql"

	"kts-backend/internal/config"
	"kts-backend/internal/domain"
)

// TripRepository wraps DB access for the trips ledger. The detail mapping is
// stored as an opaque JSON blob in detail_json and round-tripped verbatim.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const tripColumns = `
	id,
	COALESCE(date,''),
	COALESCE(vehicle_no,''),
	COALESCE(location_from_to,''),
	COALESCE(broker_office,''),
	COALESCE(driver_amount,0),
	COALESCE(profit,0),
	COALESCE(expense,0),
	COALESCE(total,0),
	COALESCE(status,'Unpaid'),
	COALESCE(detail_json,'')`

// List returns every trip, oldest first.
func (r TripRepository) List() ([]domain.TripRecord, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TripRecord{}
	for rows.Next() {
		rec, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID loads one trip row.
func (r TripRepository) GetByID(id int64) (domain.TripRecord, error) {
	if id <= 0 {
		return domain.TripRecord{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id)
	return scanTrip(row)
}

// Save inserts a trip and returns its new id.
func (r TripRepository) Save(rec domain.TripRecord) (int64, error) {
	blob, err := rec.Detail.MarshalBlob()
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO trips
		  (date, vehicle_no, location_from_to, broker_office,
		   driver_amount, profit, expense, total, status, detail_json)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`,
		rec.Date, rec.VehicleNo, rec.Location, rec.BrokerOffice,
		rec.DriverAmount, rec.Profit, rec.Expense, rec.Total, string(rec.Status), blob,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites the trip row, detail blob included.
func (r TripRepository) Update(id int64, rec domain.TripRecord) error {
	blob, err := rec.Detail.MarshalBlob()
	if err != nil {
		return err
	}
	res, err := r.db().Exec(`
		UPDATE trips SET
		  date=?, vehicle_no=?, location_from_to=?, broker_office=?,
		  driver_amount=?, profit=?, expense=?, total=?, status=?, detail_json=?
		WHERE id=?
	`,
		rec.Date, rec.VehicleNo, rec.Location, rec.BrokerOffice,
		rec.DriverAmount, rec.Profit, rec.Expense, rec.Total, string(rec.Status), blob,
		id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
	}
	return nil
}

// Delete removes the trip permanently; deletion is irreversible.
func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (domain.TripRecord, error) {
	var rec domain.TripRecord
	var status, blob string
	if err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.VehicleNo,
		&rec.Location,
		&rec.BrokerOffice,
		&rec.DriverAmount,
		&rec.Profit,
		&rec.Expense,
		&rec.Total,
		&status,
		&blob,
	); err != nil {
		return domain.TripRecord{}, err
	}
	rec.Status = domain.Status(status)
	detail, err := domain.DetailFromBlob(blob)
	if err != nil {
		// a corrupt blob must not take the whole ledger down; the grid
		// columns still carry the stored projections
		detail = domain.TripDetail{}
	}
	rec.Detail = detail
	return rec, nil
}
