package model

// Login roles. A bank match reports the historical "hospital" role tag.
const (
	RoleDonor    = "donor"
	RoleHospital = "hospital"
)

// LoginRequest is the payload of POST /api/login. Role is an optional hint:
// absent means try donor first, then bank.
type LoginRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the matched entity plus its role tag. The handler
// flattens Entity's fields into the response object next to "role".
type LoginResult struct {
	Role   string
	Entity interface{}
}
