package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"kleos-intake/internal/metrics"
	"kleos-intake/internal/models"
	"kleos-intake/pkg/errors"

	"go.uber.org/zap"
)

// expiryMargin is subtracted from the issuer-reported lifetime so a token
// is never presented while it could expire mid-request.
const expiryMargin = 30 * time.Second

// defaultExpiresIn is assumed when the issuer omits expires_in.
const defaultExpiresIn = 300 * time.Second

// TokenProvider yields a bearer token usable for Kleos API calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Credentials are the client-credentials grant parameters.
type Credentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

func (t *cachedToken) valid(now time.Time) bool {
	return t != nil && now.Before(t.expiresAt)
}

// TokenSource acquires and memoizes an OAuth2 client-credentials token.
// It holds exactly one token at a time; reads of a still-valid token take
// only the read lock, and refreshes are single-flighted so concurrent
// callers racing on an expired slot share one grant request.
type TokenSource struct {
	creds  Credentials
	client *http.Client
	logger *zap.Logger

	mu     sync.RWMutex
	cached *cachedToken
	group  singleflight.Group

	// Now is the clock used for expiry checks. Tests may replace it.
	Now func() time.Time
}

// NewTokenSource creates a token source for one credential/scope tuple.
func NewTokenSource(creds Credentials, client *http.Client, logger *zap.Logger) *TokenSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &TokenSource{
		creds:  creds,
		client: client,
		logger: logger,
		Now:    time.Now,
	}
}

// Token returns the cached token if it is still valid, refreshing it
// otherwise. A failed refresh leaves the slot untouched and is not retried.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.RLock()
	cached := ts.cached
	ts.mu.RUnlock()
	if cached.valid(ts.Now()) {
		return cached.token, nil
	}

	key := ts.creds.ClientID + "|" + strings.Join(ts.creds.Scopes, " ")
	v, err, _ := ts.group.Do(key, func() (interface{}, error) {
		// Another caller may have refreshed while we waited on the flight.
		ts.mu.RLock()
		cached := ts.cached
		ts.mu.RUnlock()
		if cached.valid(ts.Now()) {
			return cached.token, nil
		}

		// The flight's outcome is shared by every waiting caller, so the
		// grant must not abort when the winning caller alone is canceled.
		// The HTTP client's timeout still bounds the request.
		token, err := ts.refresh(context.WithoutCancel(ctx))
		metrics.ObserveTokenRefresh(err)
		if err != nil {
			return "", err
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.creds.ClientID)
	form.Set("client_secret", ts.creds.ClientSecret)
	form.Set("scope", strings.Join(ts.creds.Scopes, " "))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.creds.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrAuthFailure)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		ts.logger.Error("Token grant request failed", zap.Error(err))
		return "", errors.Wrap(err, errors.ErrAuthFailure)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrAuthFailure)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ts.logger.Error("Token grant rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", errors.Wrap(fmt.Errorf("token endpoint returned %d", resp.StatusCode), errors.ErrAuthFailure)
	}

	var tr models.TokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", errors.Wrap(err, errors.ErrAuthFailure)
	}
	if tr.AccessToken == "" {
		return "", errors.Wrap(fmt.Errorf("token endpoint returned no access_token"), errors.ErrAuthFailure)
	}

	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = defaultExpiresIn
	}

	ts.mu.Lock()
	ts.cached = &cachedToken{
		token:     tr.AccessToken,
		expiresAt: ts.Now().Add(lifetime - expiryMargin),
	}
	ts.mu.Unlock()

	ts.logger.Info("Acquired Kleos access token", zap.Duration("lifetime", lifetime))
	return tr.AccessToken, nil
}
