package access_test

import (
	"testing"
	"time"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/access"
	"github.com/gmarcondes/prioriza/tests"
)

func setup(t *testing.T) *access.Service {
	t.Helper()

	svc, err := access.NewService(testutil.Directory())
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestService_Authenticate(t *testing.T) {
	svc := setup(t)

	tests := []struct {
		name     string
		username string
		password string
		now      time.Time
		wantErr  error
	}{
		{name: "ok", username: "admin", password: "1234", now: date(2025, time.June, 10)},
		{name: "username is cleaned", username: "  Admin ", password: "1234", now: date(2025, time.June, 10)},
		{name: "unknown user", username: "ghost", password: "1234", now: date(2025, time.June, 10), wantErr: access.ErrNotFound},
		{name: "wrong password", username: "admin", password: "wrong", now: date(2025, time.June, 10), wantErr: access.ErrInvalidPassword},
		{name: "valid through expiry day", username: "admin", password: "1234", now: date(2025, time.December, 31)},
		{name: "expired", username: "usuario1", password: "abcd", now: date(2026, time.January, 1), wantErr: access.ErrAccessExpired},
		{name: "expired checks run after password", username: "usuario1", password: "wrong", now: date(2026, time.January, 1), wantErr: access.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.Authenticate(tt.username, tt.password, tt.now)
			if err != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && entry.Username == "" {
				t.Error("Authenticate() returned an empty entry")
			}
		})
	}
}

func TestNewService(t *testing.T) {
	// a provided hash is taken as-is
	entry := access.Entry{Username: "ops"}
	if err := entry.SetPassword("S3cret!pass"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	svc, err := access.NewService([]core.Credential{
		{Username: "ops", PasswordHash: string(entry.PasswordHash), Expires: "2030-01-01"},
	})
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	if _, err := svc.Authenticate("ops", "S3cret!pass", date(2025, time.June, 10)); err != nil {
		t.Errorf("Authenticate() with provisioned hash failed: %v", err)
	}

	// bad directory entries are rejected at startup
	badEntries := []struct {
		name  string
		creds []core.Credential
	}{
		{name: "empty username", creds: []core.Credential{{Username: " ", Password: "x", Expires: "2030-01-01"}}},
		{name: "bad expiry date", creds: []core.Credential{{Username: "ops", Password: "x", Expires: "soon"}}},
	}
	for _, tt := range badEntries {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := access.NewService(tt.creds); err == nil {
				t.Error("NewService() accepted a bad directory")
			}
		})
	}
}

func TestEntry_Expired(t *testing.T) {
	entry := access.Entry{Username: "admin", ExpiresAt: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}

	if entry.Expired(date(2025, time.December, 31)) {
		t.Error("entry expired on its last valid day")
	}
	if !entry.Expired(date(2026, time.January, 1)) {
		t.Error("entry still valid past its expiry date")
	}
}
