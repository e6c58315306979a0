package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// Auth is the HTTP client for the remote user service. Credentials pass
// through; only the issued token comes back.
type Auth struct {
	apiClient
}

func NewAuth(baseURL string, httpClient *http.Client, log zerolog.Logger) *Auth {
	return &Auth{apiClient{name: "auth", baseURL: baseURL, http: httpClient, log: log}}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	status, err := a.doJSON(ctx, http.MethodPost, "/api/users/login", "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	switch status {
	case http.StatusOK:
		return resp.Token, nil
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound:
		return "", domain.ErrInvalidCredentials
	default:
		return "", fmt.Errorf("login returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (a *Auth) Register(ctx context.Context, input ports.RegisterInput) error {
	req := registerRequest{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Role:     input.Role,
	}
	status, err := a.doJSON(ctx, http.MethodPost, "/api/users/register", "", req, nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return domain.ErrUserExists
	case http.StatusBadRequest:
		return domain.ErrInvalidCredentials
	default:
		return fmt.Errorf("register returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
}
