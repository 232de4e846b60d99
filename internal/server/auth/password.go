package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way bcrypt hash of the plaintext.
// The cost factor is process-wide configuration; pass bcrypt.DefaultCost
// when no explicit cost is configured.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain hashes to the stored credential.
// A malformed stored credential is a verification failure, not an error.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
