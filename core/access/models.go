package access

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DateLayout is the wire/config format of access expiry dates.
const DateLayout = "2006-01-02"

// Entry is one static access directory entry. Entries are provisioned via
// configuration and never mutated at runtime.
type Entry struct {
	Username     string
	PasswordHash []byte
	// ExpiresAt is midnight UTC of the last day the entry may log in.
	ExpiresAt time.Time
}

func (e *Entry) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = hash
	return nil
}

func (e Entry) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(e.PasswordHash, []byte(pwd))
}

// Expired reports whether the entry's access window has passed. Comparison is
// at date precision: the entry is still valid for the whole of its expiry day.
func (e Entry) Expired(now time.Time) bool {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today.After(e.ExpiresAt)
}
