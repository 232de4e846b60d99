// Package models holds the persistent entities of the news portal.
package models

import "time"

// User is a registered identity. Password holds the bcrypt credential,
// never the plaintext.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	FullName  *string
	CreatedAt time.Time
}
