package models

import "time"

// Comment belongs to a news article and a commenting identity, both via
// dual-form owner references. Username and FullName are a denormalized
// snapshot taken at creation time; they do not follow later profile
// changes.
type Comment struct {
	ID        string
	News      OwnerRef
	User      OwnerRef
	Username  string
	FullName  *string
	Text      string
	CreatedAt time.Time
}
