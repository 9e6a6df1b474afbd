package services

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

// TripExportColumns is the fixed column order of the trip ledger export.
var TripExportColumns = []string{
	"Date", "Vehicle No", "Location", "Broker Office",
	"Load Amt", "Driver Amt", "Expenses", "Profit", "Status",
}

// VehicleExpenseExportColumns is the column order of the vehicle ledger export.
var VehicleExpenseExportColumns = []string{
	"Date", "Vehicle No", "F.C", "Tyre", "Tax", "Spare/Work",
	"Loan", "Insurance", "Others", "Total",
}

// OfficeExpenseExportColumns is the column order of the office ledger export.
var OfficeExpenseExportColumns = []string{
	"Month", "Current Bill", "Manager Salary", "Office Rent", "Others", "Total",
}

// ExportService builds pre-aggregated row feeds for the report writers: every
// feed is the visible ledger plus one trailing totals row, amounts already
// formatted for display. The trip ledger also renders straight to PDF and CSV.
type ExportService struct {
	Trips           repositories.TripRepository
	VehicleExpenses repositories.VehicleExpenseRepository
	OfficeExpenses  repositories.OfficeExpenseRepository
	RequestID       string
}

// TripRows loads the trip ledger and lays it out as export rows. Unpaid trips
// show the outstanding amount in the status column.
func (s ExportService) TripRows() ([][]string, error) {
	trips, err := s.Trips.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	utils.LogEvent(s.RequestID, "exports", "trip_rows", fmt.Sprintf("rows=%d", len(trips)))
	return BuildTripRows(trips), nil
}

// BuildTripRows lays trips out in export column order and appends the totals
// row. The Load Amt column holds the trip total, matching the grid heading.
// Pure; safe to call on any slice.
func BuildTripRows(trips []domain.TripRecord) [][]string {
	rows := make([][]string, 0, len(trips)+1)
	for _, t := range trips {
		status := string(t.Status)
		if t.Status == domain.StatusUnpaid {
			status = fmt.Sprintf("Unpaid: %s", utils.FormatAmount(domain.UnpaidAmount(t)))
		}
		rows = append(rows, []string{
			utils.DisplayDate(t.Date),
			t.VehicleNo,
			t.Location,
			t.BrokerOffice,
			utils.FormatAmount(t.Total),
			utils.FormatAmount(t.DriverAmount),
			utils.FormatAmount(t.Expense),
			utils.FormatAmount(t.Profit),
			status,
		})
	}
	sum := domain.SummarizeTripLedger(trips)
	rows = append(rows, []string{
		"Total", "", "", "",
		utils.FormatAmount(sum.Total),
		utils.FormatAmount(sum.DriverAmount),
		utils.FormatAmount(sum.Expense),
		utils.FormatAmount(sum.Profit),
		fmt.Sprintf("Unpaid: %s", utils.FormatAmount(sum.Unpaid)),
	})
	return rows
}

// VehicleExpenseRows lays the filtered vehicle ledger out as export rows with
// a trailing totals row per monetary column.
func (s ExportService) VehicleExpenseRows(f repositories.VehicleExpenseFilter) ([][]string, error) {
	records, err := s.VehicleExpenses.List(f)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load vehicle expenses", Err: err}
	}
	return BuildVehicleExpenseRows(records), nil
}

func BuildVehicleExpenseRows(records []domain.VehicleExpenseRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	var fc, tyre, tax, spare, loan, ins, others float64
	for _, r := range records {
		rows = append(rows, []string{
			utils.DisplayDate(r.Date),
			r.VehicleNo,
			utils.FormatAmount(r.FCExpense),
			utils.FormatAmount(r.TyreAmount),
			utils.FormatAmount(r.Tax),
			utils.FormatAmount(r.SpareWork),
			utils.FormatAmount(r.Loan),
			utils.FormatAmount(r.Insurance),
			utils.FormatAmount(r.Others),
			utils.FormatAmount(r.RecordTotal()),
		})
		fc += r.FCExpense
		tyre += r.TyreAmount
		tax += r.Tax
		spare += r.SpareWork
		loan += r.Loan
		ins += r.Insurance
		others += r.Others
	}
	rows = append(rows, []string{
		"Total", "",
		utils.FormatAmount(fc),
		utils.FormatAmount(tyre),
		utils.FormatAmount(tax),
		utils.FormatAmount(spare),
		utils.FormatAmount(loan),
		utils.FormatAmount(ins),
		utils.FormatAmount(others),
		utils.FormatAmount(domain.VehicleExpenseGrandTotal(records)),
	})
	return rows
}

// OfficeExpenseRows lays the monthly office ledger out with its column sums.
func (s ExportService) OfficeExpenseRows() ([][]string, error) {
	records, err := s.OfficeExpenses.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load office expenses", Err: err}
	}
	return BuildOfficeExpenseRows(records), nil
}

func BuildOfficeExpenseRows(records []domain.OfficeExpenseRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	for _, r := range records {
		rows = append(rows, []string{
			r.Month,
			utils.FormatAmount(r.CurrentBill),
			utils.FormatAmount(r.ManagerSalary),
			utils.FormatAmount(r.OfficeRent),
			utils.FormatAmount(r.Others),
			utils.FormatAmount(r.RecordTotal()),
		})
	}
	sum := domain.SummarizeOfficeLedger(records)
	rows = append(rows, []string{
		"Total",
		utils.FormatAmount(sum.CurrentBill),
		utils.FormatAmount(sum.ManagerSalary),
		utils.FormatAmount(sum.OfficeRent),
		utils.FormatAmount(sum.Others),
		utils.FormatAmount(sum.GrandTotal),
	})
	return rows
}

// TripLedgerPDF renders the trip ledger table as a landscape A4 PDF.
func (s ExportService) TripLedgerPDF() ([]byte, string, error) {
	trips, err := s.Trips.List()
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	utils.LogEvent(s.RequestID, "exports", "trip_pdf", fmt.Sprintf("rows=%d", len(trips)))
	return buildTripLedgerPDF(BuildTripRows(trips))
}

func buildTripLedgerPDF(rows [][]string) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Trip Ledger", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "TRIP LEDGER")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	widths := []float64{24, 30, 48, 40, 22, 22, 24, 24, 36}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range TripExportColumns {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for ri, row := range rows {
		if ri == len(rows)-1 {
			pdf.SetFont("Helvetica", "B", 9)
		}
		for i, cell := range row {
			align := "L"
			if i >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TRIP_LEDGER_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

// TripVoucherPDF renders one trip's full detail sheet: the identity columns
// on top, every detail field in entry-form order below, the projections and
// payment status at the bottom.
func (s ExportService) TripVoucherPDF(id int64) ([]byte, string, error) {
	rec, err := s.Trips.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", domain.NotFoundError{Resource: "trip", Err: err}
		}
		return nil, "", domain.InternalError{Msg: "failed to load trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "exports", "trip_voucher", fmt.Sprintf("id=%d", id))
	return buildTripVoucherPDF(rec)
}

func buildTripVoucherPDF(rec domain.TripRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "TRIP VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	head := []string{
		fmt.Sprintf("Date          : %s", utils.DisplayDate(rec.Date)),
		fmt.Sprintf("Vehicle No    : %s", rec.VehicleNo),
		fmt.Sprintf("Location      : %s", rec.Location),
		fmt.Sprintf("Broker Office : %s", rec.BrokerOffice),
	}
	for _, line := range head {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Trip Details")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, field := range domain.DetailFields {
		value := rec.Detail[field]
		if value == "" {
			continue
		}
		pdf.CellFormat(70, 6, field, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, value, "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	foot := []string{
		fmt.Sprintf("Total Amount : %s", utils.FormatRupees(rec.Total)),
		fmt.Sprintf("Expenses     : %s", utils.FormatRupees(rec.Expense)),
		fmt.Sprintf("Profit       : %s", utils.FormatRupees(rec.Profit)),
		fmt.Sprintf("Status       : %s", rec.Status),
	}
	if rec.Status == domain.StatusUnpaid {
		foot = append(foot, fmt.Sprintf("Balance Due  : %s", utils.FormatRupees(domain.UnpaidAmount(rec))))
	}
	for _, line := range foot {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TRIP_VOUCHER_%d.pdf", rec.ID)
	return buf.Bytes(), filename, nil
}

// TripLedgerCSV renders the trip ledger, header plus rows, as CSV bytes.
func (s ExportService) TripLedgerCSV() ([]byte, string, error) {
	trips, err := s.Trips.List()
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	utils.LogEvent(s.RequestID, "exports", "trip_csv", fmt.Sprintf("rows=%d", len(trips)))

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(TripExportColumns); err != nil {
		return nil, "", err
	}
	if err := w.WriteAll(BuildTripRows(trips)); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TRIP_LEDGER_%s.csv", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
