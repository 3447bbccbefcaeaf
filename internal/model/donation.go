package model

// Donation records a unit-quantity blood contribution by a donor to a bank.
// Notes only exists on the legacy layout and stays nil on the native one.
type Donation struct {
	ID           string  `db:"donation_id" json:"donation_id"`
	DonorID      string  `db:"donor_id" json:"donor_id"`
	BankID       string  `db:"bank_id" json:"bank_id"`
	Quantity     *int    `db:"quantity" json:"quantity"`
	DonationDate *string `db:"donation_date" json:"donation_date,omitempty"`
	Notes        *string `db:"notes" json:"notes,omitempty"`
}

// DonateRequest is the payload of POST /api/donate. The operation creates a
// donation and its linked test in one transaction.
type DonateRequest struct {
	DonorID  string `json:"donor_id"`
	BankID   string `json:"bank_id"`
	Quantity int    `json:"quantity"`
}

// DonateResult carries both rows created by a donate call.
type DonateResult struct {
	Donation *Donation  `json:"donation"`
	Test     *BloodTest `json:"test"`
}
