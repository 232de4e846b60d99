// Package services contains the server-side business logic: registration
// and login, news and comment operations, and the owner-resolution rules
// that bridge the two schema generations left by the data migration.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/hexid"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/repomanager"
)

// Resolver turns a dual-form owner reference into the referenced identity,
// or "no owner". The modern relational key wins when it is present and its
// target still exists; otherwise the legacy string is decoded and looked
// up. Malformed or dangling legacy data degrades to "no owner" instead of
// failing the read, and resolution never rewrites the stored split.
type Resolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewResolver constructs a Resolver over the given database handle.
func NewResolver(db *sql.DB, m repomanager.RepositoryManager) *Resolver {
	return &Resolver{db: db, repomanager: m}
}

// ResolveUser returns the identity an owner reference points at, or
// (nil, nil) when no owner is resolvable. Store failures are returned
// as-is; they are the only error case.
func (r *Resolver) ResolveUser(ctx context.Context, ref models.OwnerRef) (*models.User, error) {
	repo := r.repomanager.Users(r.db)

	if ref.HasModern() {
		user, err := repo.GetByID(ctx, *ref.ID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		// target gone, fall through to the legacy form
	}

	if ref.HasLegacy() {
		id, err := hexid.Parse(*ref.Legacy)
		if err != nil {
			// malformed legacy data degrades to "no owner" on read
			return nil, nil
		}
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return user, nil
	}

	return nil, nil
}

// EffectiveOwnerID returns the owner identifier as a plain string for
// authorization comparisons: the resolved identity's id when resolution
// succeeds, else the raw legacy string when that is all the row carries,
// else "". The raw fallback avoids pretending an orphaned row has no
// recorded owner at all while still never matching a live identity.
func (r *Resolver) EffectiveOwnerID(ctx context.Context, ref models.OwnerRef) (string, error) {
	user, err := r.ResolveUser(ctx, ref)
	if err != nil {
		return "", err
	}
	if user != nil {
		return user.ID, nil
	}
	if ref.HasLegacy() {
		return *ref.Legacy, nil
	}
	return "", nil
}
