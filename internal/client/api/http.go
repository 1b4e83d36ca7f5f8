package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/undefineddevelopers/skillexchange/internal/common"
	"github.com/undefineddevelopers/skillexchange/internal/logging"
)

// DefaultTimeout bounds every call, including the refresh round trip.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the authenticated request pipeline over net/http.
// Construct it once at process start and share it; it is safe for
// concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	log     logging.Logger

	// refresh coalesces concurrent session refreshes so that only one is
	// in flight at a time and all waiters observe its single outcome.
	refresh singleflight.Group
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a pipeline bound to the given credential store.
// Empty baseURL and non-positive timeout fall back to the defaults.
func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialStore, log logging.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// request is one logical request, kept rebuildable so the pipeline can
// re-issue it after a refresh.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

// call marshals in (if any) as JSON and runs the request through the
// pipeline, decoding the envelope's data into out on success.
func (c *HTTPClient) call(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}
	r := request{method: method, path: path, query: query, body: body, contentType: "application/json"}
	return c.send(ctx, r, out, 0)
}

// send issues r and handles the unauthorized path. The attempt counter is
// threaded explicitly: attempt 0 may refresh and re-issue once, attempt 1
// never does, so a request is retried at most once and a 401 on the retry
// propagates as-is.
func (c *HTTPClient) send(ctx context.Context, r request, out any, attempt int) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && attempt == 0 && r.path != EndpointRefresh {
		refreshed, err := c.refreshSession(ctx)
		if err != nil {
			return err
		}
		if refreshed {
			return c.send(ctx, r, out, attempt+1)
		}
		// No refresh token existed: session state is discarded and the
		// original 401 falls through to the caller.
	}

	return decode(r, resp.StatusCode, raw, out)
}

// newRequest builds the outgoing http.Request: URL, body, request id, and
// the bearer credential when an access token is stored. An absent token
// means the request simply goes out unauthenticated.
func (c *HTTPClient) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if len(r.body) > 0 {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", r.method, r.path, err)
	}

	if len(r.body) > 0 {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	token, err := c.creds.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	return req, nil
}

// refreshSession exchanges the stored refresh token for a new pair and
// persists it. It reports false with a nil error when no refresh token is
// stored (session state is discarded, the caller surfaces its original 401).
// A failed refresh discards session state and returns ErrSessionExpired.
func (c *HTTPClient) refreshSession(ctx context.Context) (bool, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		refresh, err := c.creds.RefreshToken(ctx)
		if err != nil {
			return false, fmt.Errorf("read refresh token: %w", err)
		}
		if refresh == "" {
			c.clearSession(ctx)
			return false, nil
		}

		body, err := json.Marshal(refreshRequest{RefreshToken: refresh})
		if err != nil {
			return false, fmt.Errorf("encode refresh request: %w", err)
		}

		var pair TokenPair
		r := request{method: http.MethodPost, path: EndpointRefresh, body: body, contentType: "application/json"}
		if err := c.send(ctx, r, &pair, 1); err != nil {
			c.clearSession(ctx)
			return false, fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}

		if err := c.creds.SaveTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
			return false, fmt.Errorf("persist refreshed tokens: %w", err)
		}

		c.log.Debug(ctx, "session refreshed")
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (c *HTTPClient) clearSession(ctx context.Context) {
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Warn(ctx, "clearing session state failed", "error", err)
	}
}

// decode interprets a response body as the uniform envelope.
func decode(r request, status int, raw []byte, out any) error {
	if status == http.StatusNotFound && isProfileLookup(r.path) {
		return &Error{Status: status, Message: envelopeMessage(raw), sentinel: ErrProfileNotFound}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if status >= http.StatusBadRequest {
			e := &Error{Status: status, Message: strings.TrimSpace(string(raw))}
			if status == http.StatusUnauthorized {
				e.sentinel = common.ErrUnauthorized
			}
			return e
		}
		return fmt.Errorf("malformed response (status %d): %w", status, err)
	}

	if !env.Success {
		e := &Error{Status: status, Message: env.Message}
		if status == http.StatusUnauthorized {
			e.sentinel = common.ErrUnauthorized
		}
		return e
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// envelopeMessage extracts the message of an envelope body, falling back to
// the trimmed raw body when it is not an envelope.
func envelopeMessage(raw []byte) string {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(raw))
}
