// Package credentials persists the local session state: access token,
// refresh token, and the cached user snapshot. The token pair is written in
// one transaction so a refresh never leaves half a pair behind; a key that
// was never written reads as absent, not as an error.
package credentials

import "context"

// Repository is durable key/value storage for session state.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
