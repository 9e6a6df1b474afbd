package repositories

import (
	"database/sql"
	"strings"

	"kts-backend/internal/config"
	"kts-backend/internal/domain"
)

// RegistryRepository wraps DB access for vehicle_driver_details. The vehicle
// number is the natural key: Upsert updates the existing row when the number
// is already registered.
type RegistryRepository struct {
	DB *sql.DB
}

func (r RegistryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const registryColumns = `
	id,
	COALESCE(vehicle_no,''),
	COALESCE(registration_date,''),
	COALESCE(fitness_upto,''),
	COALESCE(tax_upto,''),
	COALESCE(insurance_upto,''),
	COALESCE(pucc_upto,''),
	COALESCE(permit_upto,''),
	COALESCE(national_permit_upto,''),
	COALESCE(driver_name,''),
	COALESCE(driver_contact,''),
	COALESCE(driver_alt_contact,''),
	COALESCE(driver_experience,''),
	COALESCE(driver_adhar,''),
	COALESCE(driver_license_path,''),
	COALESCE(driver_date_of_joining,''),
	COALESCE(driver_bank_account,''),
	COALESCE(loan_total,0),
	COALESCE(loan_paid,0),
	COALESCE(loan_remaining,0)`

// ListAll returns every registry entry ordered by vehicle number.
func (r RegistryRepository) ListAll() ([]domain.VehicleDriverDetail, error) {
	rows, err := r.db().Query(`SELECT ` + registryColumns + ` FROM vehicle_driver_details ORDER BY vehicle_no ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VehicleDriverDetail{}
	for rows.Next() {
		rec, err := scanRegistry(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByVehicleNo loads one entry by its vehicle number.
func (r RegistryRepository) GetByVehicleNo(vehicleNo string) (domain.VehicleDriverDetail, error) {
	vehicleNo = strings.TrimSpace(vehicleNo)
	if vehicleNo == "" {
		return domain.VehicleDriverDetail{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(`SELECT `+registryColumns+` FROM vehicle_driver_details WHERE vehicle_no=? LIMIT 1`, vehicleNo)
	return scanRegistry(row)
}

// Upsert saves the entry, updating in place when the vehicle number exists.
// Returns the row id.
func (r RegistryRepository) Upsert(rec domain.VehicleDriverDetail) (int64, error) {
	var existingID int64
	err := r.db().QueryRow(`SELECT id FROM vehicle_driver_details WHERE vehicle_no=? LIMIT 1`, rec.VehicleNo).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}

	if existingID > 0 {
		if _, err := r.db().Exec(`
			UPDATE vehicle_driver_details SET
			  registration_date=?, fitness_upto=?, tax_upto=?, insurance_upto=?,
			  pucc_upto=?, permit_upto=?, national_permit_upto=?,
			  driver_name=?, driver_contact=?, driver_alt_contact=?,
			  driver_experience=?, driver_adhar=?, driver_license_path=?,
			  driver_date_of_joining=?, driver_bank_account=?,
			  loan_total=?, loan_paid=?, loan_remaining=?
			WHERE id=?
		`,
			rec.RegistrationDate, rec.FitnessUpto, rec.TaxUpto, rec.InsuranceUpto,
			rec.PUCCUpto, rec.PermitUpto, rec.NationalPermitUpto,
			rec.DriverName, rec.DriverContact, rec.DriverAltContact,
			rec.DriverExperience, rec.DriverAdhar, rec.DriverLicensePath,
			rec.DateOfJoining, rec.BankAccount,
			rec.LoanTotal, rec.LoanPaid, rec.LoanRemaining,
			existingID,
		); err != nil {
			return 0, err
		}
		return existingID, nil
	}

	res, err := r.db().Exec(`
		INSERT INTO vehicle_driver_details
		  (vehicle_no, registration_date, fitness_upto, tax_upto, insurance_upto,
		   pucc_upto, permit_upto, national_permit_upto,
		   driver_name, driver_contact, driver_alt_contact,
		   driver_experience, driver_adhar, driver_license_path,
		   driver_date_of_joining, driver_bank_account,
		   loan_total, loan_paid, loan_remaining)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		rec.VehicleNo, rec.RegistrationDate, rec.FitnessUpto, rec.TaxUpto, rec.InsuranceUpto,
		rec.PUCCUpto, rec.PermitUpto, rec.NationalPermitUpto,
		rec.DriverName, rec.DriverContact, rec.DriverAltContact,
		rec.DriverExperience, rec.DriverAdhar, rec.DriverLicensePath,
		rec.DateOfJoining, rec.BankAccount,
		rec.LoanTotal, rec.LoanPaid, rec.LoanRemaining,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RegistryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_driver_details WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanRegistry(row rowScanner) (domain.VehicleDriverDetail, error) {
	var rec domain.VehicleDriverDetail
	if err := row.Scan(
		&rec.ID, &rec.VehicleNo, &rec.RegistrationDate,
		&rec.FitnessUpto, &rec.TaxUpto, &rec.InsuranceUpto,
		&rec.PUCCUpto, &rec.PermitUpto, &rec.NationalPermitUpto,
		&rec.DriverName, &rec.DriverContact, &rec.DriverAltContact,
		&rec.DriverExperience, &rec.DriverAdhar, &rec.DriverLicensePath,
		&rec.DateOfJoining, &rec.BankAccount,
		&rec.LoanTotal, &rec.LoanPaid, &rec.LoanRemaining,
	); err != nil {
		return domain.VehicleDriverDetail{}, err
	}
	return rec, nil
}
