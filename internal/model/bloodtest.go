package model

// Test status values. A test is created as pending together with its donation
// and moves on as screening results come in.
const (
	TestStatusPending   = "pending"
	TestStatusCompleted = "completed"
)

// BloodTest is the lab screening record linked 1:1 to a donation.
// TestDetail only exists on the native layout.
type BloodTest struct {
	ID         string  `db:"test_id" json:"test_id"`
	DonorID    string  `db:"donor_id" json:"donor_id"`
	DonationID string  `db:"donation_id" json:"donation_id"`
	TestResult *string `db:"test_result" json:"test_result,omitempty"`
	Status     *string `db:"status" json:"status,omitempty"`
	TestDetail *string `db:"test_detail" json:"test_detail,omitempty"`
	TestDate   *string `db:"test_date" json:"test_date,omitempty"`
}

// UpdateTestRequest is the payload of POST /api/tests/:id.
type UpdateTestRequest struct {
	TestResult *string `json:"test_result"`
	Status     *string `json:"status"`
	TestDetail *string `json:"test_detail"`
	TestDate   *string `json:"test_date"`
}
