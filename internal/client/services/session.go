// Package services contains application services for the SkillExchange CLI.
// This file defines the session facade: the higher-level operations the UI
// consumes instead of talking to the pipeline and the credential store
// directly.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
	"github.com/undefineddevelopers/skillexchange/internal/client/repositories/credentials"
	"github.com/undefineddevelopers/skillexchange/internal/common"
	"github.com/undefineddevelopers/skillexchange/internal/logging"
)

// TokenInfo is what the client can read out of its own access token without
// verifying the signature. Display only; authorization stays server-side.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

// SessionService defines the session operations for the CLI.
//
// Contract:
//   - IsAuthenticated: an access token is present. Presence, not validity:
//     an expired-but-present token still reads as authenticated until a real
//     request fails.
//   - Login/Signup: validate input locally, then call the API. A validation
//     failure never reaches the network.
//   - Logout: wipes local session state unconditionally; purely client-side.
//   - CurrentUser: fetch the account and cache a snapshot locally.
//   - CachedUser: read the snapshot without a network call; nil when absent.
type SessionService interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	Login(ctx context.Context, mobileNumber, password string) error
	Signup(ctx context.Context, name, mobileNumber, email, password, confirm string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*api.User, error)
	CachedUser(ctx context.Context) (*api.User, error)
	TokenInfo(ctx context.Context) (*TokenInfo, error)
}

type sessionService struct {
	client api.Client
	store  *credentials.Store
	log    logging.Logger
}

// NewSessionService constructs a SessionService bound to the given API
// client and credential store.
func NewSessionService(client api.Client, store *credentials.Store, log logging.Logger) SessionService {
	return &sessionService{client: client, store: store, log: log}
}

func (s *sessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.store.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *sessionService) Login(ctx context.Context, mobileNumber, password string) error {
	if err := ValidateLogin(mobileNumber, password); err != nil {
		return err
	}
	if _, err := s.client.Login(ctx, mobileNumber, password); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "mobile", mobileNumber)
	return nil
}

func (s *sessionService) Signup(ctx context.Context, name, mobileNumber, email, password, confirm string) error {
	if err := ValidateSignup(name, mobileNumber, email, password, confirm); err != nil {
		return err
	}
	if err := s.client.Signup(ctx, name, mobileNumber, email, password); err != nil {
		return err
	}
	s.log.Info(ctx, "account created", "mobile", mobileNumber)
	return nil
}

// Logout discards local session state. It flips the session to
// unauthenticated even when clearing partially fails; there is no remote
// call to fail.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing session state failed", "error", err)
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) CurrentUser(ctx context.Context) (*api.User, error) {
	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := s.store.SaveUser(ctx, blob); err != nil {
		// The fetch itself succeeded; a failed cache write is not fatal.
		s.log.Warn(ctx, "caching user snapshot failed", "error", err)
	}

	return user, nil
}

func (s *sessionService) CachedUser(ctx context.Context) (*api.User, error) {
	blob, err := s.store.User(ctx)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	var user api.User
	if err := json.Unmarshal(blob, &user); err != nil {
		return nil, fmt.Errorf("decode user snapshot: %w", err)
	}
	return &user, nil
}

// TokenInfo decodes the stored access token without verifying it: the
// client has no signing key, and only needs the claims for display.
func (s *sessionService) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	raw, err := s.store.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, common.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = exp.Time.Before(time.Now())
	}
	return info, nil
}
