package ports

import "context"

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// AuthClient talks to the remote user service. Credentials are never stored
// locally; login exchanges them for a bearer token.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) error
}
