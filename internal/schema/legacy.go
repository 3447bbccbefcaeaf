package schema

import "fmt"

// legacyAdapter serves the externally managed layout. Table and column names
// are fixed by that deployment and are written out literally here; this file
// is the single place that knows them.
//
// Several read columns carry COALESCE fallback chains (e.g. Blood_Group,
// BloodGroup) because the column spelling drifted across legacy deployments
// and was never reconciled upstream. The chains are preserved as-is rather
// than guessing a single true name. Missing tables or columns surface as
// storage errors; no migration is ever attempted against this backend.
type legacyAdapter struct{}

func newLegacyAdapter() *legacyAdapter { return &legacyAdapter{} }

var legacyTables = map[Entity]string{
	Donors:    "donor",
	Banks:     "hospital",
	Donations: "donationrecord",
	Tests:     "bloodtest",
	Patients:  "patient",
	Requests:  "emergencyrequest",
	Staffs:    "staff",
}

var legacyIDColumns = map[Entity]string{
	Donors:    "Donor_ID",
	Banks:     "Hospital_ID",
	Donations: "Donation_ID",
	Tests:     "Test_ID",
	Patients:  "Patient_ID",
	Requests:  "Request_ID",
	Staffs:    "Staff_ID",
}

// legacyProjections alias every physical column back to its canonical name.
var legacyProjections = map[Entity]string{
	Donors: "Donor_ID AS donor_id, Name AS name, Age AS age, Gender AS gender, " +
		"COALESCE(Blood_Group, BloodGroup) AS blood_type, " +
		"COALESCE(PhoneNo, Phone_No, ph_no) AS ph_no, " +
		"COALESCE(Address, address) AS address, " +
		"COALESCE(LastDonationDate, LastDonation_Date, last_donation_date) AS last_donation_date, " +
		"Password AS password",
	Banks: "Hospital_ID AS bank_id, Hospital_Name AS hospital_name, Location AS location, " +
		"Contact_No AS contact_no, Password AS password",
	Donations: "Donation_ID AS donation_id, Donor_ID AS donor_id, Bank_ID AS bank_id, " +
		"Donation_Date AS donation_date, Quantity_Donated AS quantity, Notes AS notes",
	Tests: "Test_ID AS test_id, Donation_ID AS donation_id, Donor_ID AS donor_id, " +
		"Test_Date AS test_date, Test_Result AS test_result, Status AS status",
	Patients: "Patient_ID AS patient_id, Hospital_ID AS hospital_id, Name AS name, Age AS age, " +
		"Gender AS gender, Blood_Group AS blood_group, Disease AS disease",
	Requests: "Request_ID AS request_id, Patient_ID AS patient_id, Hospital_ID AS hospital_id, " +
		"Bank_ID AS bank_id, BloodGroup_Required AS blood_group_required, " +
		"Quantity_Needed AS quantity_needed, Request_Date AS request_date, Status AS status",
	Staffs: "Staff_ID AS staff_id, Name AS name, Role AS role, Contact_No AS contact, " +
		"Bank_ID AS bank_id, Qualification AS qualification, Experience AS experience",
}

// legacyInserts target the known physical column names; ids are assigned by
// the storage layer and returned to the caller.
var legacyInserts = map[Entity]string{
	Donors: "INSERT INTO donor (Name, Age, Gender, BloodGroup, PhoneNo, Address, LastDonationDate, Password) " +
		"VALUES (:name, :age, :gender, :blood_type, :ph_no, :address, :last_donation_date, :password) " +
		"RETURNING Donor_ID",
	Banks: "INSERT INTO hospital (Hospital_Name, Location, Contact_No, Password) " +
		"VALUES (:hospital_name, :location, :contact_no, :password) " +
		"RETURNING Hospital_ID",
	Donations: "INSERT INTO donationrecord (Donor_ID, Bank_ID, Donation_Date, Quantity_Donated, Notes) " +
		"VALUES (:donor_id, :bank_id, :donation_date, :quantity, :notes) " +
		"RETURNING Donation_ID",
	Tests: "INSERT INTO bloodtest (Donation_ID, Donor_ID, Test_Date, Test_Result, Status) " +
		"VALUES (:donation_id, :donor_id, :test_date, :test_result, :status) " +
		"RETURNING Test_ID",
	Patients: "INSERT INTO patient (Hospital_ID, Name, Age, Gender, Blood_Group, Disease) " +
		"VALUES (:hospital_id, :name, :age, :gender, :blood_group, :disease) " +
		"RETURNING Patient_ID",
	Requests: "INSERT INTO emergencyrequest (Patient_ID, Hospital_ID, Bank_ID, BloodGroup_Required, Quantity_Needed, Request_Date, Status) " +
		"VALUES (:patient_id, :hospital_id, :bank_id, :blood_group_required, :quantity_needed, :request_date, :status) " +
		"RETURNING Request_ID",
	Staffs: "INSERT INTO staff (Name, Role, Contact_No, Bank_ID, Qualification, Experience) " +
		"VALUES (:name, :role, :contact, :bank_id, :qualification, :experience) " +
		"RETURNING Staff_ID",
}

// legacyUpdates replace the writable fields. Ids are cast to text in the
// WHERE clause because callers address rows by canonical string ids while the
// legacy layout stores numeric ones.
var legacyUpdates = map[Entity]string{
	Donors: "UPDATE donor SET Name = :name, Age = :age, Gender = :gender, BloodGroup = :blood_type, " +
		"PhoneNo = :ph_no, Address = :address WHERE CAST(Donor_ID AS TEXT) = :donor_id",
	Banks: "UPDATE hospital SET Hospital_Name = :hospital_name, Location = :location, " +
		"Contact_No = :contact_no WHERE CAST(Hospital_ID AS TEXT) = :bank_id",
	Donations: "UPDATE donationrecord SET Donor_ID = :donor_id, Bank_ID = :bank_id, " +
		"Quantity_Donated = :quantity, Donation_Date = :donation_date " +
		"WHERE CAST(Donation_ID AS TEXT) = :donation_id",
	Tests: "UPDATE bloodtest SET Test_Result = :test_result, Status = :status, Test_Date = :test_date " +
		"WHERE CAST(Test_ID AS TEXT) = :test_id",
	Patients: "UPDATE patient SET Hospital_ID = :hospital_id, Name = :name, Age = :age, Gender = :gender, " +
		"Blood_Group = :blood_group, Disease = :disease WHERE CAST(Patient_ID AS TEXT) = :patient_id",
	Requests: "UPDATE emergencyrequest SET Patient_ID = :patient_id, Bank_ID = :bank_id, " +
		"Hospital_ID = :hospital_id, BloodGroup_Required = :blood_group_required, " +
		"Quantity_Needed = :quantity_needed, Request_Date = :request_date, Status = :status " +
		"WHERE CAST(Request_ID AS TEXT) = :request_id",
	Staffs: "UPDATE staff SET Bank_ID = :bank_id, Contact_No = :contact, Name = :name, " +
		"Experience = :experience, Qualification = :qualification " +
		"WHERE CAST(Staff_ID AS TEXT) = :staff_id",
}

func (a *legacyAdapter) Backend() string { return "legacy" }

func (a *legacyAdapter) Table(e Entity) string { return legacyTables[e] }

func (a *legacyAdapter) SelectAll(e Entity) string {
	return fmt.Sprintf("SELECT %s FROM %s", legacyProjections[e], legacyTables[e])
}

func (a *legacyAdapter) SelectByID(e Entity) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE CAST(%s AS TEXT) = $1",
		legacyProjections[e], legacyTables[e], legacyIDColumns[e])
}

func (a *legacyAdapter) LoginLookup(e Entity) string {
	switch e {
	case Donors:
		return fmt.Sprintf("SELECT %s FROM donor WHERE Name = $1 OR CAST(Donor_ID AS TEXT) = $2 LIMIT 1",
			legacyProjections[Donors])
	case Banks:
		return fmt.Sprintf("SELECT %s FROM hospital WHERE Hospital_Name = $1 OR CAST(Hospital_ID AS TEXT) = $2 LIMIT 1",
			legacyProjections[Banks])
	}
	return ""
}

func (a *legacyAdapter) Insert(e Entity) string { return legacyInserts[e] }
func (a *legacyAdapter) Update(e Entity) string { return legacyUpdates[e] }

func (a *legacyAdapter) Fulfill() string {
	return "UPDATE emergencyrequest SET Status = $1 WHERE CAST(Request_ID AS TEXT) = $2"
}

// GeneratesID is true: legacy rows get storage-assigned numeric ids.
func (a *legacyAdapter) GeneratesID() bool { return true }
