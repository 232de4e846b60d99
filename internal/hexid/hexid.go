// Package hexid generates and validates the object identifiers used as
// primary keys throughout the store: 24-character lowercase hex strings
// (12 random bytes). The format is shared by every collection, so a single
// codec is enough.
package hexid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/newsportal/internal/common"
)

// Length is the canonical length of an encoded identifier.
const Length = 24

// New returns a fresh random identifier.
// It returns an error only if the random number generator fails.
func New() (string, error) {
	b := make([]byte, Length/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Parse validates an externally supplied identifier and returns it in
// canonical form. Malformed input yields common.ErrBadFormat; Parse never
// modifies state and accepts only lowercase hex of exactly Length runes.
func Parse(s string) (string, error) {
	if len(s) != Length {
		return "", common.ErrBadFormat
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", common.ErrBadFormat
		}
	}
	return s, nil
}

// ParseField is Parse with the offending field named in the error, for
// identifiers the caller supplied directly (path params, token subjects).
func ParseField(s, field string) (string, error) {
	id, err := Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid %s id: %w", field, err)
	}
	return id, nil
}
