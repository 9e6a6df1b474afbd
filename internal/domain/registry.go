package domain

// VehicleDriverDetail is the registry entry for one truck and its driver:
// statutory document expiry dates on the vehicle side, contact and identity
// details on the driver side, and the driver's loan position. Keyed by
// vehicle number; saving an existing number updates it in place.
type VehicleDriverDetail struct {
	ID                 int64  `json:"id"`
	VehicleNo          string `json:"vehicleNo"`
	RegistrationDate   string `json:"registrationDate"`
	FitnessUpto        string `json:"fitnessUpto"`
	TaxUpto            string `json:"taxUpto"`
	InsuranceUpto      string `json:"insuranceUpto"`
	PUCCUpto           string `json:"puccUpto"`
	PermitUpto         string `json:"permitUpto"`
	NationalPermitUpto string `json:"nationalPermitUpto"`

	DriverName        string `json:"driverName"`
	DriverContact     string `json:"driverContact"`
	DriverAltContact  string `json:"driverAltContact"`
	DriverExperience  string `json:"driverExperience"`
	DriverAdhar       string `json:"driverAdhar"`
	DriverLicensePath string `json:"driverLicensePath"`
	DateOfJoining     string `json:"dateOfJoining"`
	BankAccount       string `json:"bankAccount"`

	LoanTotal     float64 `json:"loanTotal"`
	LoanPaid      float64 `json:"loanPaid"`
	LoanRemaining float64 `json:"loanRemaining"` // derived, never entered
}

// DeriveLoanRemaining recomputes the outstanding loan before every save:
// total minus paid, floored at zero.
func (v *VehicleDriverDetail) DeriveLoanRemaining() {
	remaining := v.LoanTotal - v.LoanPaid
	if remaining < 0 {
		remaining = 0
	}
	v.LoanRemaining = remaining
}
