package news

import (
	"context"

	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.News) (*models.News, error)
	GetByID(ctx context.Context, id string) (*models.News, error)
	List(ctx context.Context) ([]*models.News, error)
	Update(ctx context.Context, item *models.News) error
	Delete(ctx context.Context, id string) error
}
