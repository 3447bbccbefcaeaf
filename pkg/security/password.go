package security

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckPassword compares a supplied password against the stored credential.
//
// Rows migrated from the original deployment hold plaintext passwords and are
// compared by exact string equality, matching the historical behaviour. Stored
// values that look like bcrypt hashes are verified with bcrypt instead, so a
// deployment can re-hash credentials without breaking existing rows. Plaintext
// storage is a known, deliberate fidelity carry-over; see DESIGN.md.
func CheckPassword(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}

// HashPassword produces a bcrypt hash for operators that opt in to hashed
// storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
