package domain

import "errors"

const (
	RoleCustomer = "CUSTOMER"
	RoleSeller   = "SELLER"
	RoleAdmin    = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// Identity is what the bearer token decodes to. A zero Identity means the
// token is absent or undecodable; it is never an error condition.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsZero reports whether no identity could be derived from the token.
func (i Identity) IsZero() bool {
	return i.Username == "" && i.Role == ""
}
