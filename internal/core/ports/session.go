package ports

import (
	"context"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// TokenStore persists the raw bearer token so a session survives restarts.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SessionResolver is the read side of the session: whether a token is held
// and what identity it decodes to. Identity is recomputed from the token on
// every call, never cached.
type SessionResolver interface {
	IsAuthenticated() bool
	Identity() domain.Identity
	Token() string
}

// SessionService adds the login/logout transitions. Neither returns an
// error: token persistence is a fail-silent put and decode failures are
// absorbed into an empty identity.
type SessionService interface {
	SessionResolver
	Login(ctx context.Context, token string)
	Logout(ctx context.Context)
}
