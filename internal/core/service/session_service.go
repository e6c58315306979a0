package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// SessionService holds the bearer token of the current client and derives
// identity from it on demand. The token is the single source of truth:
// identity is never stored, so token and identity cannot diverge.
type SessionService struct {
	store ports.TokenStore
	log   zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewSessionService restores any persisted token so the session survives a
// process restart. A load failure degrades to logged-out.
func NewSessionService(ctx context.Context, store ports.TokenStore, log zerolog.Logger) *SessionService {
	s := &SessionService{store: store, log: log}

	token, err := store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load persisted token, starting unauthenticated")
		return s
	}
	s.token = token
	return s
}

// Login replaces the current token unconditionally and persists it. The
// token is not validated here; an undecodable token simply yields an empty
// identity on read.
func (s *SessionService) Login(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist token")
	}
}

// Logout clears the token and removes its persisted copy.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token")
	}
}

// IsAuthenticated reports whether a token is held. It says nothing about
// whether the token decodes to an identity.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the raw bearer token, or "" when logged out.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity decodes the token's payload segment on every call. All decode
// failures are absorbed: a corrupted token degrades to an empty identity,
// never an error.
func (s *SessionService) Identity() domain.Identity {
	return decodeIdentity(s.Token())
}

// decodeIdentity extracts {username, role} from a three-segment token whose
// middle segment is base64-encoded JSON. Username comes from the "sub"
// claim, falling back to "username"; role from "role", defaulting to "".
func decodeIdentity(token string) domain.Identity {
	if token == "" {
		return domain.Identity{}
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return domain.Identity{}
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return domain.Identity{}
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return domain.Identity{}
	}

	var id domain.Identity
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		id.Username = sub
	} else if username, ok := claims["username"].(string); ok {
		id.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	return id
}
