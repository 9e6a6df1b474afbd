package domain

import (
	"encoding/json"

	"kts-backend/internal/utils"
)

// Detail field names. These are the keys of the trip detail mapping exactly as
// the entry form labels them; detail_json round-trips them verbatim.
const (
	FieldDriverName      = "Driver Name"
	FieldStartKM         = "Start KM"
	FieldEndKM           = "End KM"
	FieldKMTravelled     = "KM Travelled"
	FieldTotalTripAmount = "Total Trip Amount"
	FieldTripAdvance     = "Trip Advance"
	FieldReturnBalance   = "Return Balance"
	FieldPooja           = "Pooja"
	FieldDiesel          = "Diesel"
	FieldRTOPC           = "R.T.O & P.C"
	FieldToll            = "Toll"
	FieldDriverAmount    = "Driver Amount"
	FieldDriverAdvance   = "Driver Advance"
	FieldDriverBalance   = "Driver Balance"
	FieldCleanerAmount   = "Cleaner Amount"
	FieldBrokerAmount    = "Broker Amount"
	FieldLoadAmount      = "Load Amount"
	FieldUnloadAmount    = "Unload Amount"
	FieldOthers          = "Others"
)

// DetailFields lists every detail field in entry-form order.
var DetailFields = []string{
	FieldDriverName, FieldStartKM, FieldEndKM, FieldKMTravelled,
	FieldTotalTripAmount, FieldTripAdvance, FieldReturnBalance,
	FieldPooja, FieldDiesel, FieldRTOPC, FieldToll,
	FieldDriverAmount, FieldDriverAdvance, FieldDriverBalance,
	FieldCleanerAmount, FieldBrokerAmount, FieldLoadAmount,
	FieldUnloadAmount, FieldOthers,
}

// TripDetail is the mutable field mapping behind one trip row: key -> raw text
// as typed by the user, with derived fields stored as rounded display text.
type TripDetail map[string]string

// Amount parses a detail field as money/KM text; blank or bad input is 0.
func (d TripDetail) Amount(field string) float64 {
	return utils.ParseAmount(d[field])
}

// Clone copies the mapping so derivation stays pure.
func (d TripDetail) Clone() TripDetail {
	out := make(TripDetail, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// MarshalBlob serializes the detail mapping for the trips table detail_json
// column. The store round-trips this blob verbatim.
func (d TripDetail) MarshalBlob() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DetailFromBlob restores a detail mapping from its stored blob. A blank blob
// yields an empty mapping; a corrupt one is an error for the caller.
func DetailFromBlob(blob string) (TripDetail, error) {
	if blob == "" {
		return TripDetail{}, nil
	}
	var d TripDetail
	if err := json.Unmarshal([]byte(blob), &d); err != nil {
		return nil, err
	}
	if d == nil {
		d = TripDetail{}
	}
	return d, nil
}

// TripRecord is one haulage job: the grid columns plus the detail mapping.
// DriverAmount/Profit/Expense/Total are projections of Detail, recomputed by
// Finalize whenever the detail changes, never entered directly.
type TripRecord struct {
	ID           int64      `json:"id"`
	Date         string     `json:"date"`
	VehicleNo    string     `json:"vehicleNo"`
	Location     string     `json:"location"`
	BrokerOffice string     `json:"brokerOffice"`
	DriverAmount float64    `json:"driverAmount"`
	Profit       float64    `json:"profit"`
	Expense      float64    `json:"expense"`
	Total        float64    `json:"total"`
	Status       Status     `json:"status"`
	Detail       TripDetail `json:"detail"`
}
