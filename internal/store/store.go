// Package store persists geocoder results so repeated research runs do not
// re-hit the Census API for the same city. Two backends exist: SQLite for
// single-user CLI installs and Postgres for shared deployments.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Store is the geocode cache contract. An empty cached CBSA is a negative
// entry recording that the geocoder found no metro for the pair.
type Store interface {
	GetCBSA(ctx context.Context, city, state string) (cbsa string, ok bool, err error)
	PutCBSA(ctx context.Context, city, state, cbsa string) error
	Close() error
}

// cacheKey derives a stable key from the normalized pair.
func cacheKey(city, state string) string {
	norm := strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(state))
	sum := sha256.Sum256([]byte(norm))
	return hex.EncodeToString(sum[:])
}
