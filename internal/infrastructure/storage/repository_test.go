package storage

import (
	"context"
	"reflect"
	"testing"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/infrastructure/storage/memory"
)

func TestTokenRepository_RoundTrip(t *testing.T) {
	repo := NewTokenRepository(memory.New())
	ctx := context.Background()

	token, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if token != "" {
		t.Fatalf("token = %q, want empty before save", token)
	}

	if err := repo.Save(ctx, "a.b.c"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "a.b.c" {
		t.Fatalf("token = %q, want a.b.c", token)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if token != "" {
		t.Fatalf("token = %q, want empty after clear", token)
	}
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo := NewCartRepository(memory.New())
	ctx := context.Background()

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if loaded != nil {
		t.Fatalf("cart = %+v, want nil before save", loaded)
	}

	cart := domain.Cart{Items: []domain.LineItem{
		{Product: domain.Product{ID: 1, Name: "keyboard", Price: 100, Stock: 5}, Quantity: 2},
		{Product: domain.Product{ID: 2, Name: "mouse", Price: 50, Stock: 9}, Quantity: 1},
	}}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(*loaded, cart) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *loaded, cart)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	loaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if loaded != nil {
		t.Fatalf("cart = %+v, want nil after clear", loaded)
	}
}

func TestCartRepository_CorruptPayloadFailsLoad(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	if err := kv.Set(ctx, "cart", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewCartRepository(kv)
	if _, err := repo.Load(ctx); err == nil {
		t.Fatalf("expected error loading corrupt cart payload")
	}
}
