package models

// OwnerRef is a dual-form foreign key left behind by the schema migration:
// rows may carry a modern relational key (ID), a legacy plain-string
// identifier (Legacy), both, or neither. The modern form is authoritative
// whenever it is present and still resolves; readers must never rewrite
// the stored split (no migration-on-read).
type OwnerRef struct {
	ID     *string
	Legacy *string
}

// HasModern reports whether the modern relational key is populated.
func (r OwnerRef) HasModern() bool {
	return r.ID != nil && *r.ID != ""
}

// HasLegacy reports whether the legacy string identifier is populated.
func (r OwnerRef) HasLegacy() bool {
	return r.Legacy != nil && *r.Legacy != ""
}

// NewOwnerRef builds a reference with both forms populated, matching how
// current write paths persist ownership during the migration window.
func NewOwnerRef(id string) OwnerRef {
	legacy := id
	return OwnerRef{ID: &id, Legacy: &legacy}
}
