package model

// Staff is a bank employee. Role only exists on the legacy layout.
type Staff struct {
	ID            string  `db:"staff_id" json:"staff_id"`
	BankID        *string `db:"bank_id" json:"bank_id"`
	Contact       *string `db:"contact" json:"contact,omitempty"`
	Name          *string `db:"name" json:"name"`
	Role          *string `db:"role" json:"role,omitempty"`
	Experience    *string `db:"experience" json:"experience,omitempty"`
	Qualification *string `db:"qualification" json:"qualification,omitempty"`
}
