package model

// Patient is registered by a hospital and may be the subject of emergency
// blood requests. Age is stored as supplied; the legacy layout keeps it as
// free text in places, so it stays a string here.
type Patient struct {
	ID         string  `db:"patient_id" json:"patient_id"`
	HospitalID *string `db:"hospital_id" json:"hospital_id"`
	Name       *string `db:"name" json:"name"`
	Age        *string `db:"age" json:"age,omitempty"`
	Gender     *string `db:"gender" json:"gender,omitempty"`
	BloodGroup *string `db:"blood_group" json:"blood_group,omitempty"`
	Disease    *string `db:"disease" json:"disease,omitempty"`
}
