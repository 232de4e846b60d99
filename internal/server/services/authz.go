package services

import "github.com/dmitrijs2005/newsportal/internal/common"

// authorizeOwner allows a mutating operation only when the resource has a
// resolvable owner and that owner is the acting identity. Resources with
// no owner (orphaned legacy data) are mutable by nobody: the guard fails
// closed. There are no roles and no admin override.
func authorizeOwner(actingID, ownerID string) error {
	if ownerID == "" || ownerID != actingID {
		return common.ErrorForbidden
	}
	return nil
}
