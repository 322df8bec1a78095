package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a small byte-oriented key/value store with per-entry TTL.
// ttl <= 0 keeps the entry until it is deleted.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Fetch is a read-through helper: it returns the cached value for key or
// loads, stores and returns a fresh one. Cache failures never fail the
// read; they only cost a trip to the loader.
//
// Load and Set are not atomic: a Delete issued between them is undone by
// the Set, so keep the TTL short for data that callers re-check elsewhere.
func Fetch[T any](
	ctx context.Context,
	c Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if raw, err := c.Get(ctx, key); err == nil {
		var v T
		if json.Unmarshal(raw, &v) == nil {
			return v, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		_ = c.Set(ctx, key, raw, ttl)
	}
	return v, nil
}

// --------------------------------------------------
// Keys
// --------------------------------------------------

const (
	keyPrefix = "cutcorp:"

	// PrefixData holds everything rebuildable from the database.
	// The denylist lives outside it so a flush never revives a token.
	PrefixData   = keyPrefix + "data:"
	PrefixSlots  = PrefixData + "slots:"
	PrefixAuth   = PrefixData + "auth:"
	prefixRevoke = keyPrefix + "revoked:"
)

func SlotsKey(barberID, date string) string {
	return PrefixSlots + barberID + ":" + date
}

func ServicesKey() string { return PrefixData + "catalog:services" }

func BarbersKey() string { return PrefixData + "catalog:barbers" }

func TokenVersionKey(userID string) string {
	return PrefixAuth + "ver:" + userID
}

func RevokedKey(jti string) string {
	return prefixRevoke + jti
}
