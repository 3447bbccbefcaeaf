package model

// Donor is an individual who contributes blood donations. Field names follow
// the canonical vocabulary the frontend and both schema layouts are mapped to.
type Donor struct {
	ID               string  `db:"donor_id" json:"donor_id"`
	Name             string  `db:"name" json:"name" validate:"required"`
	BirthDate        *string `db:"birth_date" json:"birth_date,omitempty"`
	Gender           *string `db:"gender" json:"gender,omitempty"`
	Age              *int    `db:"age" json:"age"`
	Address          *string `db:"address" json:"address,omitempty"`
	Phone            *string `db:"ph_no" json:"ph_no" validate:"required,phone"`
	BloodType        *string `db:"blood_type" json:"blood_type,omitempty"`
	LastDonationDate *string `db:"last_donation_date" json:"last_donation_date,omitempty"`
	Password         *string `db:"password" json:"password,omitempty" validate:"required,complexity"`
}

// BloodGroups enumerates the eight ABO/Rh groups.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
