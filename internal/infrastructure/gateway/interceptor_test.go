package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
)

func TestInterceptor_ReadsTokenFreshFromStorage(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	store := newStubStore()
	client := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, store, nil, zerolog.Nop())

	// No token held: no header.
	_, _ = client.GetCurrentUser(context.Background())

	// Storage is the source of truth at the transport boundary: a token
	// written by another process is picked up without any client rebuild.
	store.Set(ports.KeyToken, "tok-other-process")
	_, _ = client.GetCurrentUser(context.Background())

	if len(seen) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(seen))
	}
	if seen[0] != "" {
		t.Fatalf("anonymous request must carry no header, got %q", seen[0])
	}
	if seen[1] != "Bearer tok-other-process" {
		t.Fatalf("token not read fresh from storage, got %q", seen[1])
	}
}

func TestInterceptor_UnauthorizedClearsDurableSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	store := newStubStore()
	store.Set(ports.KeyToken, "tok-stale")
	store.Set(ports.KeyUser, `{"id":1}`)
	store.Set(ports.KeyCompanies, `[]`)

	hookFired := false
	client := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, store, func() { hookFired = true }, zerolog.Nop())

	if _, err := client.GetCurrentUser(context.Background()); err == nil {
		t.Fatalf("expected error from 401")
	}

	if _, ok := store.Get(ports.KeyToken); ok {
		t.Fatalf("token must be cleared on authentication rejection")
	}
	if _, ok := store.Get(ports.KeyUser); ok {
		t.Fatalf("user must be cleared on authentication rejection")
	}
	if !hookFired {
		t.Fatalf("unauthorized hook must fire")
	}
}

func TestInterceptor_LoginRejectionIsNotSessionInvalidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	store := newStubStore()
	store.Set(ports.KeyToken, "tok-existing")

	hookFired := false
	client := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, store, func() { hookFired = true }, zerolog.Nop())

	if _, err := client.Login(context.Background(), "a@b.com", "bad"); err == nil {
		t.Fatalf("expected login rejection")
	}

	if _, ok := store.Get(ports.KeyToken); !ok {
		t.Fatalf("a failed login must not clear an existing session")
	}
	if hookFired {
		t.Fatalf("unauthorized hook must not fire for credential rejections")
	}
}

func TestInterceptor_DoesNotMutateCallerRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	store := newStubStore()
	store.Set(ports.KeyToken, "tok-1")
	transport := newAuthTransport(nil, store, nil, zerolog.Nop())

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/me", nil)
	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatalf("original request was mutated")
	}
}
