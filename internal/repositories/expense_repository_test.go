package repositories

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"kts-backend/internal/domain"
)

func TestVehicleExpenseRepository_SaveComputesTotal(t *testing.T) {
	db, mock := newMock(t)
	repo := VehicleExpenseRepository{DB: db}

	rec := domain.VehicleExpenseRecord{
		Date:      "2025-02-01",
		VehicleNo: "TN 45 AB 1234",
		FCExpense: 500, TyreAmount: 300, SpareWork: 1200, Others: 100,
		TyreType: "New", SpareType: "Clutch",
		Total: 999999, // caller-supplied total must be ignored
	}

	mock.ExpectExec("INSERT INTO vehicle_expenses").
		WithArgs(rec.Date, rec.VehicleNo, rec.FCExpense, rec.TyreAmount, rec.TyreType,
			rec.Tax, rec.TaxType, rec.SpareWork, rec.SpareType,
			rec.Loan, rec.Insurance, rec.Others, rec.Remarks, 2100.0).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Save(rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != 3 {
		t.Fatalf("id = %d, want 3", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleExpenseRepository_ListAppliesFilters(t *testing.T) {
	db, mock := newMock(t)
	repo := VehicleExpenseRepository{DB: db}

	cols := []string{"id", "date", "vehicle_no", "fc_expense", "tyre_amount", "tyre_type",
		"tax", "tax_type", "spare_work", "spare_type", "loan", "insurance", "others",
		"remarks", "total"}
	mock.ExpectQuery("FROM vehicle_expenses WHERE 1=1 AND date>=\\? AND date<=\\? AND vehicle_no LIKE \\?").
		WithArgs("2025-01-01", "2025-01-31", "%1234%").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "2025-01-10", "TN 45 AB 1234", 500.0, 300.0, "New",
				0.0, "", 1200.0, "Clutch", 0.0, 0.0, 100.0, "", 2100.0))

	out, err := repo.List(VehicleExpenseFilter{
		StartDate: "2025-01-01", EndDate: "2025-01-31", VehicleNo: "1234",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Total != 2100 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestOfficeExpenseRepository_UpdateRecomputesTotal(t *testing.T) {
	db, mock := newMock(t)
	repo := OfficeExpenseRepository{DB: db}

	rec := domain.OfficeExpenseRecord{
		Month:       "March - 2025",
		CurrentBill: 1200, ManagerSalary: 15000, OfficeRent: 8000, Others: 500,
	}

	mock.ExpectExec("UPDATE office_expenses").
		WithArgs(rec.Month, rec.CurrentBill, rec.ManagerSalary, rec.OfficeRent,
			rec.Others, 24700.0, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(5, rec); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfficeExpenseRepository_DeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := OfficeExpenseRepository{DB: db}

	mock.ExpectExec("DELETE FROM office_expenses").
		WithArgs(int64(44)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(44); err != sql.ErrNoRows {
		t.Fatalf("delete missing = %v, want sql.ErrNoRows", err)
	}
}

func TestRegistryRepository_UpsertUpdatesExistingVehicle(t *testing.T) {
	db, mock := newMock(t)
	repo := RegistryRepository{DB: db}

	rec := domain.VehicleDriverDetail{
		VehicleNo:  "TN 45 AB 1234",
		DriverName: "Murugan",
		LoanTotal:  500000, LoanPaid: 125000, LoanRemaining: 375000,
	}

	mock.ExpectQuery("SELECT id FROM vehicle_driver_details").
		WithArgs(rec.VehicleNo).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec("UPDATE vehicle_driver_details").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Upsert(rec)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id != 9 {
		t.Fatalf("id = %d, want existing row id 9", id)
	}
}

func TestRegistryRepository_UpsertInsertsNewVehicle(t *testing.T) {
	db, mock := newMock(t)
	repo := RegistryRepository{DB: db}

	rec := domain.VehicleDriverDetail{VehicleNo: "TN 45 AB 9999"}

	mock.ExpectQuery("SELECT id FROM vehicle_driver_details").
		WithArgs(rec.VehicleNo).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO vehicle_driver_details").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := repo.Upsert(rec)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id != 12 {
		t.Fatalf("id = %d, want new row id 12", id)
	}
}
