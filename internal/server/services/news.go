package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/hexid"
	"github.com/dmitrijs2005/newsportal/internal/logging"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/repomanager"
)

// ResolvedNews is an article together with its resolved author. Author is
// nil when neither owner form points at a live identity.
type ResolvedNews struct {
	News   *models.News
	Author *models.User
}

// NewsService implements article CRUD with owner-based authorization.
type NewsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *Resolver
	logger      logging.Logger
}

func NewNewsService(db *sql.DB, m repomanager.RepositoryManager, resolver *Resolver, logger logging.Logger) *NewsService {
	return &NewsService{db: db, repomanager: m, resolver: resolver, logger: logger}
}

// List returns all articles, newest first, each with its author resolved.
func (s *NewsService) List(ctx context.Context) ([]*ResolvedNews, error) {
	items, err := s.repomanager.News(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*ResolvedNews, 0, len(items))
	for _, item := range items {
		author, err := s.resolver.ResolveUser(ctx, item.Author)
		if err != nil {
			return nil, err
		}
		result = append(result, &ResolvedNews{News: item, Author: author})
	}

	return result, nil
}

// Get returns one article with its author resolved.
func (s *NewsService) Get(ctx context.Context, id string) (*ResolvedNews, error) {
	key, err := hexid.ParseField(id, "news")
	if err != nil {
		return nil, err
	}

	item, err := s.repomanager.News(s.db).GetByID(ctx, key)
	if err != nil {
		return nil, err
	}

	author, err := s.resolver.ResolveUser(ctx, item.Author)
	if err != nil {
		return nil, err
	}

	return &ResolvedNews{News: item, Author: author}, nil
}

// Create publishes a new article owned by the acting identity. Both owner
// forms are written so the row stays readable by either schema generation.
func (s *NewsService) Create(ctx context.Context, actorID, title, content, category string, imageURL *string) (*models.News, error) {
	id, err := hexid.New()
	if err != nil {
		return nil, common.ErrorInternal
	}

	if category == "" {
		category = common.DefaultCategory
	}

	now := time.Now().UTC()
	item := &models.News{
		ID:        id,
		Title:     title,
		Content:   content,
		Category:  category,
		ImageURL:  imageURL,
		Author:    models.NewOwnerRef(actorID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repomanager.News(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating news: %w", err)
	}

	return created, nil
}

// Update applies a partial update to an article the acting identity owns.
// The stored owner reference is never rewritten, only content fields and
// the update timestamp change.
func (s *NewsService) Update(ctx context.Context, actorID, id string, patch models.NewsPatch) (*models.News, error) {
	key, err := hexid.ParseField(id, "news")
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.News(s.db)

	item, err := repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.resolver.EffectiveOwnerID(ctx, item.Author)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, ownerID); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return item, nil
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		item.ImageURL = patch.ImageURL
	}
	item.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an article the acting identity owns, cascading to the
// comments attached under either owner form. The cascade is best effort:
// a failed comment sweep is logged and the article is deleted anyway.
func (s *NewsService) Delete(ctx context.Context, actorID, id string) error {
	key, err := hexid.ParseField(id, "news")
	if err != nil {
		return err
	}

	newsRepo := s.repomanager.News(s.db)

	item, err := newsRepo.GetByID(ctx, key)
	if err != nil {
		return err
	}

	ownerID, err := s.resolver.EffectiveOwnerID(ctx, item.Author)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, ownerID); err != nil {
		return err
	}

	// sweep both owner forms in one transaction; the sweep failing does
	// not block the article delete itself
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Comments(tx)
		if _, err := repo.DeleteByNewsID(ctx, key); err != nil {
			return err
		}
		if _, err := repo.DeleteByNewsRef(ctx, key); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Warn(ctx, "comment cascade failed", "news_id", key, "error", err)
	}

	return newsRepo.Delete(ctx, key)
}
