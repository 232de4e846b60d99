package models

import "time"

// News is a published article. Author uses the dual-form owner reference;
// legacy rows may point at a deleted or malformed identity, so an article
// need not have any resolvable owner.
type News struct {
	ID        string
	Title     string
	Content   string
	Category  string
	ImageURL  *string
	Author    OwnerRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewsPatch carries the optional fields of a partial update. Nil means
// "leave unchanged".
type NewsPatch struct {
	Title    *string
	Content  *string
	Category *string
	ImageURL *string
}

// Empty reports whether the patch changes nothing.
func (p NewsPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil && p.ImageURL == nil
}
