package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"kts-backend/internal/domain"
	"kts-backend/internal/repositories"
	"kts-backend/internal/utils"
)

var registryColumnNames = []string{
	"id", "vehicle_no", "registration_date", "fitness_upto", "tax_upto",
	"insurance_upto", "pucc_upto", "permit_upto", "national_permit_upto",
	"driver_name", "driver_contact", "driver_alt_contact", "driver_experience",
	"driver_adhar", "driver_license_path", "driver_date_of_joining",
	"driver_bank_account", "loan_total", "loan_paid", "loan_remaining",
}

func TestRegistryService_SaveDerivesLoanRemaining(t *testing.T) {
	db, mock := newMock(t)
	svc := RegistryService{Repo: repositories.RegistryRepository{DB: db}}

	mock.ExpectQuery(`SELECT id FROM vehicle_driver_details WHERE vehicle_no=\? LIMIT 1`).
		WithArgs("TN 45 AB 1234").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO vehicle_driver_details").
		WithArgs("TN 45 AB 1234", "2020-06-01", "", "", "", "", "", "",
			"Murugan", "", "", "", "", "", "", "",
			100000.0, 60000.0, 40000.0).
		WillReturnResult(sqlmock.NewResult(5, 1))

	rec, err := svc.Save(domain.VehicleDriverDetail{
		VehicleNo:        " TN 45 AB 1234 ",
		RegistrationDate: "01-06-2020",
		DriverName:       "Murugan",
		LoanTotal:        100000,
		LoanPaid:         60000,
		LoanRemaining:    123456, // client-sent, must be discarded
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.LoanRemaining != 40000 {
		t.Fatalf("loan remaining = %v, want 40000", rec.LoanRemaining)
	}
	if rec.ID != 5 {
		t.Fatalf("id = %d, want 5", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegistryService_SaveRequiresVehicleNo(t *testing.T) {
	svc := RegistryService{}
	_, err := svc.Save(domain.VehicleDriverDetail{VehicleNo: "   "})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestRegistryService_ExpiringFlagsWindowAndLapsed(t *testing.T) {
	db, mock := newMock(t)
	svc := RegistryService{Repo: repositories.RegistryRepository{DB: db}}

	today := time.Now()
	soon := utils.FormatDate(today.AddDate(0, 0, 10))
	lapsed := utils.FormatDate(today.AddDate(0, 0, -5))
	far := utils.FormatDate(today.AddDate(0, 0, 60))

	mock.ExpectQuery("FROM vehicle_driver_details ORDER BY").WillReturnRows(
		sqlmock.NewRows(registryColumnNames).AddRow(
			1, "TN 45 AB 1234", "2020-06-01", lapsed, far, soon, "", "", "",
			"Murugan", "", "", "", "", "", "", "",
			0.0, 0.0, 0.0))

	out, err := svc.Expiring(30)
	if err != nil {
		t.Fatalf("expiring: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d alerts, want 2 (fitness lapsed, insurance due): %+v", len(out), out)
	}
	for _, alert := range out {
		switch alert.Document {
		case "Fitness":
			if !alert.Lapsed || alert.DaysLeft != -5 {
				t.Fatalf("fitness alert = %+v, want lapsed with -5 days", alert)
			}
		case "Insurance":
			if alert.Lapsed || alert.DaysLeft != 10 {
				t.Fatalf("insurance alert = %+v, want 10 days left", alert)
			}
		default:
			t.Fatalf("unexpected alert for %q", alert.Document)
		}
	}
}
