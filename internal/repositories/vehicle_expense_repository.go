package repositories

import (
	"database/sql"
	"strings"

	"kts-backend/internal/config"
	"kts-backend/internal/domain"
)

// VehicleExpenseFilter narrows the ledger listing. Zero values mean "all".
type VehicleExpenseFilter struct {
	StartDate string
	EndDate   string
	VehicleNo string
}

// VehicleExpenseRepository wraps DB access for vehicle_expenses. The total
// column is always recomputed from the seven amounts before a write; a total
// supplied by the caller is ignored.
type VehicleExpenseRepository struct {
	DB *sql.DB
}

func (r VehicleExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const vehicleExpenseColumns = `
	id,
	COALESCE(date,''),
	COALESCE(vehicle_no,''),
	COALESCE(fc_expense,0),
	COALESCE(tyre_amount,0),
	COALESCE(tyre_type,''),
	COALESCE(tax,0),
	COALESCE(tax_type,''),
	COALESCE(spare_work,0),
	COALESCE(spare_type,''),
	COALESCE(loan,0),
	COALESCE(insurance,0),
	COALESCE(others,0),
	COALESCE(remarks,''),
	COALESCE(total,0)`

// List returns expense records matching the filter, newest first. Filters run
// in SQL so the aggregator only ever sums what the caller sees.
func (r VehicleExpenseRepository) List(f VehicleExpenseFilter) ([]domain.VehicleExpenseRecord, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.StartDate); s != "" {
		where = append(where, "date>=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.EndDate); s != "" {
		where = append(where, "date<=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.VehicleNo); s != "" {
		where = append(where, "vehicle_no LIKE ?")
		args = append(args, "%"+s+"%")
	}

	query := `SELECT ` + vehicleExpenseColumns + ` FROM vehicle_expenses WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY date DESC, id DESC`
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VehicleExpenseRecord{}
	for rows.Next() {
		var rec domain.VehicleExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.VehicleNo,
			&rec.FCExpense, &rec.TyreAmount, &rec.TyreType,
			&rec.Tax, &rec.TaxType,
			&rec.SpareWork, &rec.SpareType,
			&rec.Loan, &rec.Insurance, &rec.Others,
			&rec.Remarks, &rec.Total,
		); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Save inserts the 13 raw fields and the store-computed 14th, total.
func (r VehicleExpenseRepository) Save(rec domain.VehicleExpenseRecord) (int64, error) {
	rec.Total = rec.RecordTotal()
	res, err := r.db().Exec(`
		INSERT INTO vehicle_expenses
		  (date, vehicle_no, fc_expense, tyre_amount, tyre_type, tax, tax_type,
		   spare_work, spare_type, loan, insurance, others, remarks, total)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		rec.Date, rec.VehicleNo, rec.FCExpense, rec.TyreAmount, rec.TyreType,
		rec.Tax, rec.TaxType, rec.SpareWork, rec.SpareType,
		rec.Loan, rec.Insurance, rec.Others, rec.Remarks, rec.Total,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the record, recomputing total.
func (r VehicleExpenseRepository) Update(id int64, rec domain.VehicleExpenseRecord) error {
	rec.Total = rec.RecordTotal()
	res, err := r.db().Exec(`
		UPDATE vehicle_expenses SET
		  date=?, vehicle_no=?, fc_expense=?, tyre_amount=?, tyre_type=?,
		  tax=?, tax_type=?, spare_work=?, spare_type=?, loan=?, insurance=?,
		  others=?, remarks=?, total=?
		WHERE id=?
	`,
		rec.Date, rec.VehicleNo, rec.FCExpense, rec.TyreAmount, rec.TyreType,
		rec.Tax, rec.TaxType, rec.SpareWork, rec.SpareType,
		rec.Loan, rec.Insurance, rec.Others, rec.Remarks, rec.Total,
		id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := r.db().QueryRow(`SELECT id FROM vehicle_expenses WHERE id=?`, id).Scan(&exists); err != nil {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r VehicleExpenseRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
