// Package storage adapts a KeyValueStore into the token and cart
// repositories the core services consume. The key layout mirrors the
// persisted state of the storefront client: a raw "token" string and a
// JSON-serialized "cart".
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

const (
	tokenKey = "token"
	cartKey  = "cart"
)

// TokenRepository persists the raw bearer token under the "token" key.
type TokenRepository struct {
	kv ports.KeyValueStore
}

func NewTokenRepository(kv ports.KeyValueStore) *TokenRepository {
	return &TokenRepository{kv: kv}
}

func (r *TokenRepository) Load(ctx context.Context) (string, error) {
	value, ok, err := r.kv.Get(ctx, tokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

func (r *TokenRepository) Save(ctx context.Context, token string) error {
	if err := r.kv.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// CartRepository persists the cart as {"items":[{"product":…,"quantity":…}]}
// under the "cart" key.
type CartRepository struct {
	kv ports.KeyValueStore
}

func NewCartRepository(kv ports.KeyValueStore) *CartRepository {
	return &CartRepository{kv: kv}
}

func (r *CartRepository) Load(ctx context.Context) (*domain.Cart, error) {
	value, ok, err := r.kv.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(value), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.kv.Set(ctx, cartKey, string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, cartKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
