package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

func newUpstreamServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthLogin_ReturnsToken(t *testing.T) {
	var gotPath, gotUsername string
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotUsername = req.Username
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "a.b.c"})
	})

	auth := NewAuth(srv.URL, srv.Client(), zerolog.Nop())
	token, err := auth.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "a.b.c" {
		t.Fatalf("token = %q, want a.b.c", token)
	}
	if gotPath != "/api/users/login" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotUsername != "alice" {
		t.Fatalf("username = %q", gotUsername)
	}
}

func TestAuthLogin_RejectedCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound} {
		srv := newUpstreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		auth := NewAuth(srv.URL, srv.Client(), zerolog.Nop())
		_, err := auth.Login(context.Background(), "alice", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("status %d: err = %v, want ErrInvalidCredentials", status, err)
		}
	}
}

func TestAuthRegister_Conflict(t *testing.T) {
	srv := newUpstreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	auth := NewAuth(srv.URL, srv.Client(), zerolog.Nop())
	err := auth.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "secret"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestAuthRegister_Created(t *testing.T) {
	var gotRole string
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Role string `json:"role"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotRole = req.Role
		w.WriteHeader(http.StatusCreated)
	})

	auth := NewAuth(srv.URL, srv.Client(), zerolog.Nop())
	err := auth.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "secret", Role: domain.RoleSeller,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if gotRole != domain.RoleSeller {
		t.Fatalf("role = %q", gotRole)
	}
}

func TestCatalogGetProduct(t *testing.T) {
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 42, Name: "keyboard", Price: 100})
	})

	catalog := NewCatalog(srv.URL, srv.Client(), zerolog.Nop())

	product, err := catalog.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if product.ID != 42 || product.Name != "keyboard" {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := catalog.GetProduct(context.Background(), 99); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCatalogSearch_EscapesQuery(t *testing.T) {
	var gotQuery string
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	})

	catalog := NewCatalog(srv.URL, srv.Client(), zerolog.Nop())
	if _, err := catalog.SearchProducts(context.Background(), "usb hub"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotQuery != "usb hub" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestCatalogCreate_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 7, Name: "desk"})
	})

	catalog := NewCatalog(srv.URL, srv.Client(), zerolog.Nop())
	created, err := catalog.CreateProduct(context.Background(), "a.b.c", domain.Product{Name: "desk", Price: 250})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("id = %d, want 7", created.ID)
	}
	if gotAuth != "Bearer a.b.c" {
		t.Fatalf("authorization = %q", gotAuth)
	}
}

func TestCatalogCreate_MapsAuthStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrNotAuthenticated},
		{http.StatusForbidden, domain.ErrForbidden},
	}
	for _, tc := range cases {
		srv := newUpstreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		catalog := NewCatalog(srv.URL, srv.Client(), zerolog.Nop())
		_, err := catalog.CreateProduct(context.Background(), "a.b.c", domain.Product{Name: "desk"})
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestOrdersPlaceOrder(t *testing.T) {
	var gotPath, gotAuth string
	srv := newUpstreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Order{ID: 3, Status: "PLACED", Total: 500})
	})

	orders := NewOrders(srv.URL, srv.Client(), zerolog.Nop())
	order, err := orders.PlaceOrder(context.Background(), "a.b.c", "alice")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.ID != 3 || order.Total != 500 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if gotPath != "/api/orders/place/alice" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer a.b.c" {
		t.Fatalf("authorization = %q", gotAuth)
	}
}

func TestOrdersPlaceOrder_MapsStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrCartEmpty},
		{http.StatusUnauthorized, domain.ErrNotAuthenticated},
		{http.StatusInternalServerError, domain.ErrUpstreamUnavailable},
	}
	for _, tc := range cases {
		srv := newUpstreamServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		orders := NewOrders(srv.URL, srv.Client(), zerolog.Nop())
		_, err := orders.PlaceOrder(context.Background(), "a.b.c", "alice")
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestTransportFailure_WrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	catalog := NewCatalog(srv.URL, &http.Client{}, zerolog.Nop())
	_, err := catalog.ListProducts(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
}
