package credentials

import (
	"context"
	"fmt"
)

// Storage keys. The user snapshot lives next to the tokens so that Clear
// wipes all session state in one sweep.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserData     = "user_data"
)

// Store exposes the typed credential-store contract on top of a Repository.
// It satisfies the api.CredentialStore interface.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// AccessToken returns the stored access token or "" when absent.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// RefreshToken returns the stored refresh token or "" when absent.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SaveTokens persists the pair in one write, so a refresh never leaves half
// a pair behind. Empty values are skipped rather than overwriting what is
// already stored.
func (s *Store) SaveTokens(ctx context.Context, access, refresh string) error {
	values := make(map[string][]byte, 2)
	if access != "" {
		values[keyAccessToken] = []byte(access)
	}
	if refresh != "" {
		values[keyRefreshToken] = []byte(refresh)
	}
	if len(values) == 0 {
		return nil
	}
	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

// SaveUser persists the serialized user snapshot.
func (s *Store) SaveUser(ctx context.Context, blob []byte) error {
	return s.repo.Set(ctx, keyUserData, blob)
}

// User returns the cached user snapshot, or nil when none is stored.
func (s *Store) User(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, keyUserData)
}

// Clear removes tokens and the cached user snapshot. Idempotent: repeated
// calls succeed with no further effect.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
