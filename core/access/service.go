package access

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/gmarcondes/prioriza/core"
)

var (
	// errors
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAccessExpired   = errors.New("access expired")
)

// Service is the read-only access directory. It is built once from
// configuration at startup; there is no runtime mutation.
type Service struct {
	entries map[string]Entry
}

// NewService parses the configured credential directory. A plaintext
// Password (DEV convenience) is bcrypt-hashed here; otherwise PasswordHash
// is taken as-is.
func NewService(creds []core.Credential) (*Service, error) {
	entries := make(map[string]Entry, len(creds))
	for _, cred := range creds {
		uname := core.CleanString(cred.Username, true /* lower */)
		if uname == "" {
			return nil, pkgerrors.New("access directory entry with empty username")
		}

		expires, err := time.ParseInLocation(DateLayout, cred.Expires, time.UTC)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing expiry date for %q", uname)
		}

		entry := Entry{Username: uname, ExpiresAt: expires}
		if cred.PasswordHash != "" {
			entry.PasswordHash = []byte(cred.PasswordHash)
		} else if err := entry.SetPassword(cred.Password); err != nil {
			return nil, pkgerrors.Wrapf(err, "hashing password for %q", uname)
		}
		entries[uname] = entry
	}
	return &Service{entries: entries}, nil
}

func (svc *Service) GetByUsername(uname string) (Entry, error) {
	if entry, ok := svc.entries[core.CleanString(uname, true /* lower */)]; ok {
		return entry, nil
	}
	return Entry{}, ErrNotFound
}

// Authenticate runs the three gate checks in order: directory lookup,
// password match, access expiry. The returned error distinguishes the
// failure reason; callers decide how much of it to surface.
func (svc *Service) Authenticate(uname, pwd string, now time.Time) (Entry, error) {
	entry, err := svc.GetByUsername(uname)
	if err != nil {
		return Entry{}, err
	}
	if err := entry.CheckPassword(pwd); err != nil {
		return Entry{}, ErrInvalidPassword
	}
	if entry.Expired(now) {
		return Entry{}, ErrAccessExpired
	}
	return entry, nil
}
