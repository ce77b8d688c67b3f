package auth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"kleos-intake/internal/auth"
	"kleos-intake/pkg/errors"

	"go.uber.org/zap"
)

// grantServer is a fake token endpoint counting grant requests.
type grantServer struct {
	*httptest.Server
	grants    int64
	expiresIn int64 // 0 omits the field
	fail      bool
}

func newGrantServer(t *testing.T, expiresIn int64) *grantServer {
	t.Helper()
	gs := &grantServer{expiresIn: expiresIn}
	gs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}
		if got := r.FormValue("scope"); got != "kleosStateful kleosLegal" {
			t.Errorf("scope = %q, want space-delimited scopes", got)
		}

		n := atomic.AddInt64(&gs.grants, 1)
		if gs.fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"server_error"}`))
			return
		}

		resp := map[string]interface{}{"access_token": fmt.Sprintf("token-%d", n)}
		if gs.expiresIn > 0 {
			resp["expires_in"] = gs.expiresIn
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(gs.Close)
	return gs
}

func newTokenSource(gs *grantServer) *auth.TokenSource {
	return auth.NewTokenSource(auth.Credentials{
		TokenURL:     gs.URL,
		ClientID:     "client-1",
		ClientSecret: "secret",
		Scopes:       []string{"kleosStateful", "kleosLegal"},
	}, gs.Client(), zap.NewNop())
}

func TestTokenReuse(t *testing.T) {
	gs := newGrantServer(t, 300)
	ts := newTokenSource(gs)
	ctx := context.Background()

	first, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	second, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	if first != second {
		t.Errorf("second acquisition returned %q, want cached %q", second, first)
	}
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Errorf("grant requests = %d, want 1", got)
	}
}

func TestTokenExpiryMargin(t *testing.T) {
	const lifetime = 300 * time.Second

	gs := newGrantServer(t, int64(lifetime.Seconds()))
	ts := newTokenSource(gs)
	ctx := context.Background()

	start := time.Now()
	now := start
	ts.Now = func() time.Time { return now }

	first, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	// One second before the safety margin the cached token is still valid.
	now = start.Add(lifetime - 31*time.Second)
	tok, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok != first {
		t.Errorf("token at lifetime-31s = %q, want cached %q", tok, first)
	}
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Fatalf("grant requests = %d, want 1 before the margin", got)
	}

	// One second past the margin exactly one new grant is issued.
	now = start.Add(lifetime - 29*time.Second)
	tok, err = ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok == first {
		t.Error("token past the margin should have been refreshed")
	}
	if got := atomic.LoadInt64(&gs.grants); got != 2 {
		t.Errorf("grant requests = %d, want 2 after the margin", got)
	}
}

func TestSingleFlight(t *testing.T) {
	gs := newGrantServer(t, 300)
	// Slow the grant down so all callers pile up on the empty slot.
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		gs.Server.Config.Handler.ServeHTTP(w, r)
	}))
	defer slow.Close()

	ts := auth.NewTokenSource(auth.Credentials{
		TokenURL:     slow.URL,
		ClientID:     "client-1",
		ClientSecret: "secret",
		Scopes:       []string{"kleosStateful", "kleosLegal"},
	}, slow.Client(), zap.NewNop())

	const callers = 10
	tokens := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = ts.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if tokens[i] != tokens[0] {
			t.Errorf("caller %d got %q, want shared %q", i, tokens[i], tokens[0])
		}
	}
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Errorf("grant requests = %d, want exactly 1", got)
	}
}

func TestRefreshSurvivesCallerCancellation(t *testing.T) {
	gs := newGrantServer(t, 300)
	started := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		gs.Server.Config.Handler.ServeHTTP(w, r)
	}))
	defer slow.Close()

	ts := auth.NewTokenSource(auth.Credentials{
		TokenURL:     slow.URL,
		ClientID:     "client-1",
		ClientSecret: "secret",
		Scopes:       []string{"kleosStateful", "kleosLegal"},
	}, slow.Client(), zap.NewNop())

	// Cancel the caller once the grant request is in flight. The grant is
	// shared with any waiter, so it must run to completion regardless.
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	tok, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token from the completed grant")
	}

	// The completed grant populated the cache for the next caller.
	next, err := ts.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() after cancellation: %v", err)
	}
	if next != tok {
		t.Errorf("next caller got %q, want cached %q", next, tok)
	}
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Errorf("grant requests = %d, want 1", got)
	}
}

func TestGrantFailureLeavesCacheEmpty(t *testing.T) {
	gs := newGrantServer(t, 300)
	gs.fail = true
	ts := newTokenSource(gs)

	if _, err := ts.Token(context.Background()); err == nil {
		t.Fatal("Token() should fail when the grant is rejected")
	} else if !errors.Is(err, errors.ErrAuthFailure) {
		t.Errorf("error = %v, want AUTH_FAILURE", err)
	}

	// No retry happened internally, and the next call tries again.
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Fatalf("grant requests = %d, want 1", got)
	}
	gs.fail = false
	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("Token() after recovery: %v", err)
	}
	if got := atomic.LoadInt64(&gs.grants); got != 2 {
		t.Errorf("grant requests = %d, want 2", got)
	}
}

func TestDefaultLifetime(t *testing.T) {
	gs := newGrantServer(t, 0) // issuer omits expires_in
	ts := newTokenSource(gs)
	ctx := context.Background()

	start := time.Now()
	now := start
	ts.Now = func() time.Time { return now }

	first, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	// Default lifetime is 300s, so the token survives past 4 minutes.
	now = start.Add(4 * time.Minute)
	tok, err := ts.Token(ctx)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok != first {
		t.Error("token should still be cached under the default lifetime")
	}
	if got := atomic.LoadInt64(&gs.grants); got != 1 {
		t.Errorf("grant requests = %d, want 1", got)
	}
}
