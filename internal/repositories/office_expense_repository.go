package repositories

import (
	"database/sql"

	"kts-backend/internal/config"
	"kts-backend/internal/domain"
)

// OfficeExpenseRepository wraps DB access for the monthly office ledger.
// Total is the store's job: recomputed from the four fields on every write.
type OfficeExpenseRepository struct {
	DB *sql.DB
}

func (r OfficeExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// List returns every month record, newest label first.
func (r OfficeExpenseRepository) List() ([]domain.OfficeExpenseRecord, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(month,''), COALESCE(current_bill,0),
		       COALESCE(manager_salary,0), COALESCE(office_rent,0),
		       COALESCE(others,0), COALESCE(total,0)
		FROM office_expenses ORDER BY month DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.OfficeExpenseRecord{}
	for rows.Next() {
		var rec domain.OfficeExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.Month, &rec.CurrentBill,
			&rec.ManagerSalary, &rec.OfficeRent, &rec.Others, &rec.Total,
		); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Save inserts a month record with its computed total.
func (r OfficeExpenseRepository) Save(rec domain.OfficeExpenseRecord) (int64, error) {
	rec.Total = rec.RecordTotal()
	res, err := r.db().Exec(`
		INSERT INTO office_expenses (month, current_bill, manager_salary, office_rent, others, total)
		VALUES (?,?,?,?,?,?)
	`, rec.Month, rec.CurrentBill, rec.ManagerSalary, rec.OfficeRent, rec.Others, rec.Total)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a month record, recomputing total.
func (r OfficeExpenseRepository) Update(id int64, rec domain.OfficeExpenseRecord) error {
	rec.Total = rec.RecordTotal()
	res, err := r.db().Exec(`
		UPDATE office_expenses
		SET month=?, current_bill=?, manager_salary=?, office_rent=?, others=?, total=?
		WHERE id=?
	`, rec.Month, rec.CurrentBill, rec.ManagerSalary, rec.OfficeRent, rec.Others, rec.Total, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := r.db().QueryRow(`SELECT id FROM office_expenses WHERE id=?`, id).Scan(&exists); err != nil {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r OfficeExpenseRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM office_expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
