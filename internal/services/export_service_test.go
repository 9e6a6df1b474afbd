package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
)

func sampleTrips() []domain.TripRecord {
	paidDetail := domain.RecalculateAll(domain.TripDetail{
		domain.FieldTotalTripAmount: "20000",
		domain.FieldTripAdvance:     "15000",
		domain.FieldReturnBalance:   "5000",
		domain.FieldLoadAmount:      "800",
	})
	unpaidDetail := domain.RecalculateAll(domain.TripDetail{
		domain.FieldTotalTripAmount: "50000",
		domain.FieldTripAdvance:     "20000",
	})

	paid := domain.TripRecord{
		ID: 1, Date: "2025-03-01", VehicleNo: "TN 45 AB 1234",
		Location: "Salem - Chennai", BrokerOffice: "KMR",
		Status: domain.StatusPaid, Detail: paidDetail,
	}
	domain.Finalize(paidDetail).Apply(&paid)

	unpaid := domain.TripRecord{
		ID: 2, Date: "2025-03-05", VehicleNo: "TN 45 AB 1234",
		Location: "Chennai - Salem", BrokerOffice: "KMR",
		Status: domain.StatusUnpaid, Detail: unpaidDetail,
	}
	domain.Finalize(unpaidDetail).Apply(&unpaid)

	return []domain.TripRecord{paid, unpaid}
}

func TestBuildTripRows(t *testing.T) {
	trips := sampleTrips()
	rows := BuildTripRows(trips)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 2 data + 1 totals", len(rows))
	}
	if got := rows[0][0]; got != "01-03-2025" {
		t.Fatalf("date cell = %q, want display form 01-03-2025", got)
	}
	// Load Amt is the trip total, not the Load Amount expense category
	if got := rows[0][4]; got != "20000" {
		t.Fatalf("load amt cell = %q, want trip total 20000", got)
	}
	if got := rows[1][4]; got != "50000" {
		t.Fatalf("load amt cell = %q, want trip total 50000", got)
	}
	if got := rows[0][8]; got != "Paid" {
		t.Fatalf("status cell = %q, want Paid", got)
	}
	if got := rows[1][8]; got != "Unpaid: 30000" {
		t.Fatalf("status cell = %q, want Unpaid: 30000", got)
	}

	totals := rows[2]
	if totals[0] != "Total" {
		t.Fatalf("totals row label = %q", totals[0])
	}
	sum := domain.SummarizeTripLedger(trips)
	if totals[4] != "70000" {
		t.Fatalf("totals load amt = %q, want %q (summary %v)", totals[4], "70000", sum.Total)
	}
	wantProfit := "61500"
	if totals[7] != wantProfit {
		t.Fatalf("totals profit = %q, want %q (summary %v)", totals[7], wantProfit, sum.Profit)
	}
	if totals[8] != "Unpaid: 30000" {
		t.Fatalf("totals unpaid = %q, want Unpaid: 30000", totals[8])
	}
}

func TestBuildVehicleExpenseRows(t *testing.T) {
	rows := BuildVehicleExpenseRows([]domain.VehicleExpenseRecord{
		{Date: "2025-02-01", VehicleNo: "TN 45 AB 1234", FCExpense: 500, TyreAmount: 1200, Others: 400},
		{Date: "2025-02-10", VehicleNo: "TN 45 AB 1234", Tax: 900},
	})
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][9] != "2100" {
		t.Fatalf("record total = %q, want 2100", rows[0][9])
	}
	totals := rows[2]
	if totals[0] != "Total" || totals[9] != "3000" {
		t.Fatalf("totals row = %v, want grand total 3000", totals)
	}
}

func TestBuildOfficeExpenseRows(t *testing.T) {
	rows := BuildOfficeExpenseRows([]domain.OfficeExpenseRecord{
		{Month: "January 2025", CurrentBill: 1200, ManagerSalary: 15000, OfficeRent: 8000, Others: 500},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][5] != "24700" {
		t.Fatalf("month total = %q, want 24700", rows[0][5])
	}
	if rows[1][5] != "24700" {
		t.Fatalf("grand total = %q, want 24700", rows[1][5])
	}
}

func TestBuildTripRowsEmptyLedger(t *testing.T) {
	rows := BuildTripRows(nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want totals row only", len(rows))
	}
	if rows[0][7] != "0" {
		t.Fatalf("empty ledger profit = %q, want 0", rows[0][7])
	}
}

func TestExportService_TripLedgerCSV(t *testing.T) {
	db, mock := newMock(t)
	svc := ExportService{Trips: repositories.TripRepository{DB: db}}

	detail := domain.RecalculateAll(domain.TripDetail{domain.FieldTotalTripAmount: "50000"})
	blob, _ := detail.MarshalBlob()
	mock.ExpectQuery("FROM trips ORDER BY").WillReturnRows(
		sqlmock.NewRows(tripColumnNames).
			AddRow(1, "2025-03-10", "TN 45 AB 1234", "Salem - Chennai", "KMR",
				5500.0, 44500.0, 5500.0, 50000.0, "Unpaid", blob))

	data, filename, err := svc.TripLedgerCSV()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if !strings.HasSuffix(filename, ".csv") {
		t.Fatalf("filename = %q", filename)
	}

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	// header + data row + totals row
	if len(parsed) != 3 {
		t.Fatalf("got %d csv rows, want 3", len(parsed))
	}
	if parsed[0][0] != "Date" || parsed[0][8] != "Status" {
		t.Fatalf("header = %v", parsed[0])
	}
	if parsed[1][1] != "TN 45 AB 1234" {
		t.Fatalf("data row = %v", parsed[1])
	}
}

func TestExportService_TripVoucherPDFMissingTrip(t *testing.T) {
	db, mock := newMock(t)
	svc := ExportService{Trips: repositories.TripRepository{DB: db}}

	mock.ExpectQuery(`FROM trips WHERE id=\? LIMIT 1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(tripColumnNames))

	_, _, err := svc.TripVoucherPDF(42)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestExportService_TripLedgerPDF(t *testing.T) {
	db, mock := newMock(t)
	svc := ExportService{Trips: repositories.TripRepository{DB: db}}

	mock.ExpectQuery("FROM trips ORDER BY").WillReturnRows(sqlmock.NewRows(tripColumnNames))

	data, filename, err := svc.TripLedgerPDF()
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}
