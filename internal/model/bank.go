package model

// Bank is a hospital or blood-bank entity that receives donations and raises
// emergency requests on behalf of patients.
type Bank struct {
	ID           string  `db:"bank_id" json:"bank_id"`
	HospitalName string  `db:"hospital_name" json:"hospital_name" validate:"required"`
	Location     *string `db:"location" json:"location,omitempty"`
	ContactNo    *string `db:"contact_no" json:"contact_no" validate:"required,phone"`
	Password     *string `db:"password" json:"password,omitempty" validate:"required,complexity"`
}
