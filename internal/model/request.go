package model

// Emergency request status values. Fulfill is the only status transition
// exposed by the API and is terminal.
const (
	RequestStatusPending   = "pending"
	RequestStatusFulfilled = "fulfilled"
)

// EmergencyRequest is a blood requisition raised by a bank for a patient.
type EmergencyRequest struct {
	ID                 string  `db:"request_id" json:"request_id"`
	PatientID          *string `db:"patient_id" json:"patient_id"`
	BankID             *string `db:"bank_id" json:"bank_id"`
	HospitalID         *string `db:"hospital_id" json:"hospital_id"`
	BloodGroupRequired *string `db:"blood_group_required" json:"blood_group_required"`
	QuantityNeeded     *int    `db:"quantity_needed" json:"quantity_needed"`
	RequestDate        *string `db:"request_date" json:"request_date,omitempty"`
	Status             *string `db:"status" json:"status,omitempty"`
}

// FulfillResult is the response of POST /api/requests/:id/fulfill.
type FulfillResult struct {
	RequestID string  `json:"request_id"`
	Status    string  `json:"status"`
	HandledBy *string `json:"handled_by"`
}
