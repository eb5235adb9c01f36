package gateway

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
	"github.com/ariffzainal/inhouse-erp/internal/metrics"
)

// authTransport is the interceptor every outbound request flows through.
//
// Outbound it attaches the bearer token read fresh from durable storage, not
// from the in-memory session: storage is the token's source of truth at the
// transport boundary, so a token refreshed by another process on the same
// terminal is picked up immediately.
//
// Inbound, an authentication-rejected response clears the durable token and
// user entries and fires onUnauthorized, forcing the session to its
// logged-out end state without going through the repository.
type authTransport struct {
	base           http.RoundTripper
	store          ports.Store
	onUnauthorized func()
	log            zerolog.Logger
}

func newAuthTransport(base http.RoundTripper, store ports.Store, onUnauthorized func(), log zerolog.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, store: store, onUnauthorized: onUnauthorized, log: log}
}

// credentialExempt reports whether the path authenticates by payload rather
// than by bearer token. Rejections on these paths are operation failures,
// not session invalidations.
func credentialExempt(path string) bool {
	return strings.HasSuffix(path, loginPath) || strings.HasSuffix(path, registerPath)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated.
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", uuid.NewString())

	exempt := credentialExempt(req.URL.Path)
	if !exempt {
		if token, ok := t.store.Get(ports.KeyToken); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		metrics.RequestDuration.WithLabelValues(req.URL.Path, "error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.RequestDuration.WithLabelValues(req.URL.Path, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusUnauthorized && !exempt {
		t.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg("authentication rejected, discarding session")
		metrics.ForcedLogoutsTotal.WithLabelValues("unauthorized_response").Inc()

		t.store.Remove(ports.KeyToken)
		t.store.Remove(ports.KeyUser)
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}
