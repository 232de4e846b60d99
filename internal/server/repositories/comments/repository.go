package comments

import (
	"context"

	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// The two schema-generation queries for the "comments of an article"
	// relation. A single physical row can match both when both owner forms
	// are populated; callers merge and deduplicate the results.
	ListByNewsID(ctx context.Context, newsID string) ([]*models.Comment, error)
	ListByNewsRef(ctx context.Context, newsRef string) ([]*models.Comment, error)

	Delete(ctx context.Context, id string) error
	DeleteByNewsID(ctx context.Context, newsID string) (int64, error)
	DeleteByNewsRef(ctx context.Context, newsRef string) (int64, error)
}
