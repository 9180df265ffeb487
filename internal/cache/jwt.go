package cache

import (
	"context"
	"time"
)

const jtiBlacklistPrefix = "jwt:blacklist:"

// BlacklistJTI records a revoked token ID until its natural expiry.
func BlacklistJTI(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || ttl <= 0 {
		return nil
	}
	return client.Set(ctx, jtiBlacklistPrefix+jti, "1", ttl).Err()
}

// IsJTIBlacklisted reports whether the token ID has been revoked. Redis being
// unavailable fails open: a revoked token outliving a cache outage is preferred
// over rejecting every authenticated request.
func IsJTIBlacklisted(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	n, err := client.Exists(ctx, jtiBlacklistPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
