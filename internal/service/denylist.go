package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denyListKeyPrefix = "auth:denylist:"

// TokenDenyList is a Redis-backed revocation list for auth tokens. Entries
// expire with the token's remaining lifetime, so the list never needs
// sweeping and stays correct across processes.
type TokenDenyList struct {
	client *redis.Client
}

// NewTokenDenyList creates a new TokenDenyList instance.
func NewTokenDenyList(client *redis.Client) *TokenDenyList {
	return &TokenDenyList{client: client}
}

// Deny revokes a token for the given TTL.
func (d *TokenDenyList) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if err := d.client.Set(ctx, denyListKeyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("deny token: %w", err)
	}
	return nil
}

// IsDenied reports whether the token has been revoked.
func (d *TokenDenyList) IsDenied(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denyListKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("check deny list: %w", err)
	}
	return n > 0, nil
}
