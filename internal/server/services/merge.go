package services

import (
	"sort"

	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

// MergeComments merges the modern-schema and legacy-schema query results
// for one article into a single duplicate-free list, newest first. The
// same physical comment can appear in both inputs when both of its
// article-reference forms are populated; the union is keyed by the
// comment's own id, so each logical comment appears exactly once and
// singletons from either input are kept. Comments without a creation
// timestamp sort as if created at the earliest possible instant. Ties
// break by id to keep the order deterministic. Pure function, no I/O.
func MergeComments(modern, legacy []*models.Comment) []*models.Comment {
	merged := make(map[string]*models.Comment, len(modern)+len(legacy))
	for _, c := range modern {
		merged[c.ID] = c
	}
	for _, c := range legacy {
		merged[c.ID] = c
	}

	result := make([]*models.Comment, 0, len(merged))
	for _, c := range merged {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return result
}
