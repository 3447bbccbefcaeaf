package schema

import (
	"fmt"
	"strings"
)

// nativeAdapter serves the lowercase snake_case layout whose columns match
// the canonical vocabulary 1:1. Statements are assembled once at
// construction from the canonical column lists.
type nativeAdapter struct {
	selectAll   map[Entity]string
	selectByID  map[Entity]string
	loginLookup map[Entity]string
	insert      map[Entity]string
	update      map[Entity]string
}

// nativeColumns lists every column of the native tables, id first.
var nativeColumns = map[Entity][]string{
	Donors:    {"donor_id", "name", "birth_date", "gender", "age", "address", "ph_no", "blood_type", "password"},
	Banks:     {"bank_id", "hospital_name", "location", "contact_no", "password"},
	Donations: {"donation_id", "donor_id", "bank_id", "quantity", "donation_date"},
	Tests:     {"test_id", "donor_id", "donation_id", "test_result", "status", "test_detail", "test_date"},
	Patients:  {"patient_id", "hospital_id", "name", "age", "gender", "blood_group", "disease"},
	Requests:  {"request_id", "patient_id", "bank_id", "hospital_id", "blood_group_required", "quantity_needed", "request_date", "status"},
	Staffs:    {"staff_id", "bank_id", "contact", "name", "experience", "qualification"},
}

// nativeUpdatable lists the columns replaced by a full-field update. Ids are
// immutable and donor/bank passwords are not touched by entity updates.
var nativeUpdatable = map[Entity][]string{
	Donors:    {"name", "birth_date", "gender", "age", "address", "ph_no", "blood_type"},
	Banks:     {"hospital_name", "location", "contact_no"},
	Donations: {"donor_id", "bank_id", "quantity", "donation_date"},
	Tests:     {"test_result", "status", "test_detail", "test_date"},
	Patients:  {"hospital_id", "name", "age", "gender", "blood_group", "disease"},
	Requests:  {"patient_id", "bank_id", "hospital_id", "blood_group_required", "quantity_needed", "request_date", "status"},
	Staffs:    {"bank_id", "contact", "name", "experience", "qualification"},
}

func newNativeAdapter() *nativeAdapter {
	a := &nativeAdapter{
		selectAll:   make(map[Entity]string, len(entities)),
		selectByID:  make(map[Entity]string, len(entities)),
		loginLookup: make(map[Entity]string, 2),
		insert:      make(map[Entity]string, len(entities)),
		update:      make(map[Entity]string, len(entities)),
	}

	for _, e := range entities {
		cols := nativeColumns[e]
		idCol := cols[0]
		projection := strings.Join(cols, ", ")

		a.selectAll[e] = fmt.Sprintf("SELECT %s FROM %s", projection, e)
		a.selectByID[e] = fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", projection, e, idCol)
		a.insert[e] = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", e, projection, namedParams(cols))

		var assignments []string
		for _, c := range nativeUpdatable[e] {
			assignments = append(assignments, fmt.Sprintf("%s = :%s", c, c))
		}
		a.update[e] = fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s", e, strings.Join(assignments, ", "), idCol, idCol)
	}

	a.loginLookup[Donors] = fmt.Sprintf(
		"SELECT %s FROM donors WHERE name = $1 OR donor_id = $2 LIMIT 1",
		strings.Join(nativeColumns[Donors], ", "))
	a.loginLookup[Banks] = fmt.Sprintf(
		"SELECT %s FROM banks WHERE hospital_name = $1 OR bank_id = $2 LIMIT 1",
		strings.Join(nativeColumns[Banks], ", "))

	return a
}

func namedParams(cols []string) string {
	params := make([]string, len(cols))
	for i, c := range cols {
		params[i] = ":" + c
	}
	return strings.Join(params, ", ")
}

func (a *nativeAdapter) Backend() string { return "native" }

// Table is the identity mapping on the native layout.
func (a *nativeAdapter) Table(e Entity) string { return string(e) }

func (a *nativeAdapter) SelectAll(e Entity) string   { return a.selectAll[e] }
func (a *nativeAdapter) SelectByID(e Entity) string  { return a.selectByID[e] }
func (a *nativeAdapter) LoginLookup(e Entity) string { return a.loginLookup[e] }
func (a *nativeAdapter) Insert(e Entity) string      { return a.insert[e] }
func (a *nativeAdapter) Update(e Entity) string      { return a.update[e] }

func (a *nativeAdapter) Fulfill() string {
	return "UPDATE requests SET status = $1 WHERE request_id = $2"
}

// GeneratesID is false: native rows carry application-generated string ids.
func (a *nativeAdapter) GeneratesID() bool { return false }
