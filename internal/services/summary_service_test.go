package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"kts-backend/internal/repositories"
)

var vehicleExpenseColumnNames = []string{
	"id", "date", "vehicle_no", "fc_expense", "tyre_amount", "tyre_type",
	"tax", "tax_type", "spare_work", "spare_type", "loan", "insurance",
	"others", "remarks", "total",
}

var officeExpenseColumnNames = []string{
	"id", "month", "current_bill", "manager_salary", "office_rent", "others", "total",
}

func TestSummaryService_RefreshRollsUpAllLedgers(t *testing.T) {
	db, mock := newMock(t)
	svc := SummaryService{
		Trips:           repositories.TripRepository{DB: db},
		VehicleExpenses: repositories.VehicleExpenseRepository{DB: db},
		OfficeExpenses:  repositories.OfficeExpenseRepository{DB: db},
	}

	mock.ExpectQuery("FROM trips ORDER BY").WillReturnRows(
		sqlmock.NewRows(tripColumnNames).
			AddRow(1, "2025-03-01", "TN 45 AB 1234", "Salem - Chennai", "KMR",
				5500.0, 44500.0, 5500.0, 50000.0, "Paid", "").
			AddRow(2, "2025-03-05", "TN 45 AB 1234", "Chennai - Salem", "KMR",
				2200.0, 17000.0, 3000.0, 20000.0, "Paid", ""))
	mock.ExpectQuery("FROM vehicle_expenses WHERE 1=1 ORDER BY").WillReturnRows(
		sqlmock.NewRows(vehicleExpenseColumnNames).
			AddRow(1, "2025-02-01", "TN 45 AB 1234", 500.0, 1200.0, "New",
				0.0, "", 0.0, "", 0.0, 0.0, 400.0, "", 2100.0))
	mock.ExpectQuery("FROM office_expenses ORDER BY").WillReturnRows(
		sqlmock.NewRows(officeExpenseColumnNames).
			AddRow(1, "January 2025", 1200.0, 15000.0, 8000.0, 500.0, 24700.0))

	got, err := svc.Refresh()
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.TripProfitTotal != 61500 {
		t.Fatalf("trip profit = %v, want 61500", got.TripProfitTotal)
	}
	if got.TripExpenseTotal != 8500 {
		t.Fatalf("trip expense = %v, want 8500", got.TripExpenseTotal)
	}
	if got.VehicleExpenseTotal != 2100 {
		t.Fatalf("vehicle expense = %v, want 2100", got.VehicleExpenseTotal)
	}
	if got.OfficeExpenseTotal != 24700 {
		t.Fatalf("office expense = %v, want 24700", got.OfficeExpenseTotal)
	}
	want := 61500.0 - (2100.0 + 24700.0)
	if got.GrandTotal != want {
		t.Fatalf("grand total = %v, want %v", got.GrandTotal, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSummaryService_RefreshToleratesEmptyLedgers(t *testing.T) {
	db, mock := newMock(t)
	svc := SummaryService{
		Trips:           repositories.TripRepository{DB: db},
		VehicleExpenses: repositories.VehicleExpenseRepository{DB: db},
		OfficeExpenses:  repositories.OfficeExpenseRepository{DB: db},
	}

	mock.ExpectQuery("FROM trips ORDER BY").WillReturnRows(sqlmock.NewRows(tripColumnNames))
	mock.ExpectQuery("FROM vehicle_expenses WHERE 1=1 ORDER BY").WillReturnRows(sqlmock.NewRows(vehicleExpenseColumnNames))
	mock.ExpectQuery("FROM office_expenses ORDER BY").WillReturnRows(sqlmock.NewRows(officeExpenseColumnNames))

	got, err := svc.Refresh()
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.GrandTotal != 0 || got.TripProfitTotal != 0 || got.VehicleExpenseTotal != 0 || got.OfficeExpenseTotal != 0 {
		t.Fatalf("empty ledgers must roll up to zeros, got %+v", got)
	}
}
