package bootstrap

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ariffzainal/inhouse-erp/internal/nav"
)

func seedStateDir(t *testing.T, entries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "session.json"), raw, 0o600); err != nil {
		t.Fatalf("seed state: %v", err)
	}
	return dir
}

func TestRun_RehydratesBeforeFirstGuardEvaluation(t *testing.T) {
	dir := seedStateDir(t, map[string]string{
		"token": "tok-1",
		"user":  `{"id":1,"email":"a@b.com","full_name":"Alice Doe","current_role":"admin"}`,
	})
	t.Setenv("ERP_STATE_DIR", dir)
	t.Setenv("ERP_STORE", "file")

	app, err := Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	snap := app.Session.Snapshot()
	if !snap.IsAuthenticated() {
		t.Fatalf("session not rehydrated: %+v", snap)
	}

	// The very first guard evaluation already sees the restored session.
	route, _ := nav.Lookup("/login")
	if got := nav.Decide(route, snap); got.RedirectTo != nav.DashboardPath {
		t.Fatalf("guard did not observe restored session: %+v", got)
	}
}

func TestRun_EmptyStateStartsAnonymous(t *testing.T) {
	t.Setenv("ERP_STATE_DIR", t.TempDir())
	t.Setenv("ERP_STORE", "file")

	app, err := Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.Session.Snapshot().IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if app.SessionExpired() {
		t.Fatalf("expired flag must start false")
	}
}

func TestRun_UnknownStoreKind(t *testing.T) {
	t.Setenv("ERP_STATE_DIR", t.TempDir())
	t.Setenv("ERP_STORE", "etcd")

	if _, err := Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown store kind")
	}
}
