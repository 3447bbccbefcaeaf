// Package schema maps the canonical entity/field vocabulary onto one of the
// two physical storage layouts.
//
// The native layout uses lowercase snake_case tables and columns that match
// the canonical names 1:1 and carries application-generated string ids. The
// legacy layout is externally managed, differently named and cased (e.g.
// Donor_ID, BloodGroup), and assigns numeric row ids itself.
//
// An Adapter is constructed once at startup from configuration and injected
// into the repositories; no request-time code branches on the active backend.
// Read statements alias every physical column back to its canonical name, so
// rows scan into the models identically on either backend. Write statements
// target the physical column names directly.
package schema

// Entity names the canonical entity sets.
type Entity string

const (
	Donors    Entity = "donors"
	Banks     Entity = "banks"
	Donations Entity = "donations"
	Tests     Entity = "tests"
	Patients  Entity = "patients"
	Requests  Entity = "requests"
	Staffs    Entity = "staffs"
)

// Adapter translates canonical entity and field names into backend-specific
// SQL. Insert and Update return sqlx named statements whose parameters are
// the canonical field names; the remaining methods return positional
// statements.
type Adapter interface {
	// Backend identifies the active layout, "native" or "legacy".
	Backend() string

	// Table returns the physical table name for an entity.
	Table(e Entity) string

	// SelectAll returns the full-list query with a canonical projection.
	SelectAll(e Entity) string

	// SelectByID returns the single-row query, one positional parameter.
	SelectByID(e Entity) string

	// LoginLookup returns the name-or-id query used by the login path,
	// two positional parameters (username twice), limited to one row.
	// Only defined for Donors and Banks.
	LoginLookup(e Entity) string

	// Insert returns the named insert statement. When GeneratesID reports
	// true the statement ends in a RETURNING clause yielding the
	// storage-assigned id.
	Insert(e Entity) string

	// Update returns the named full-field replacement statement keyed by
	// the entity id. Ids themselves are immutable and never updated.
	Update(e Entity) string

	// Fulfill returns the request status update, two positional
	// parameters (status, request id).
	Fulfill() string

	// GeneratesID reports whether the storage layer assigns row ids.
	GeneratesID() bool
}

// New selects the adapter for the configured backend. The choice is made once
// per process lifetime.
func New(legacy bool) Adapter {
	if legacy {
		return newLegacyAdapter()
	}
	return newNativeAdapter()
}

// entities lists every canonical entity, in creation-dependency order.
var entities = []Entity{Donors, Banks, Donations, Tests, Patients, Requests, Staffs}
