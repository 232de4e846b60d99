package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/hexid"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/repomanager"
)

// ResolvedComment is a comment together with the id of its resolved
// author, for response shaping and nothing else. AuthorID is "" when
// neither owner form resolves.
type ResolvedComment struct {
	Comment  *models.Comment
	AuthorID string
}

// CommentService implements comment operations. Listing reads both schema
// generations and merges them; creation writes both owner forms.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *Resolver
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager, resolver *Resolver) *CommentService {
	return &CommentService{db: db, repomanager: m, resolver: resolver}
}

// Create attaches a comment to an existing article. The commenting
// identity's username and full name are snapshotted onto the row.
func (s *CommentService) Create(ctx context.Context, actor *models.User, newsID, text string) (*models.Comment, error) {
	key, err := hexid.ParseField(newsID, "news")
	if err != nil {
		return nil, err
	}

	if _, err := s.repomanager.News(s.db).GetByID(ctx, key); err != nil {
		return nil, err
	}

	id, err := hexid.New()
	if err != nil {
		return nil, common.ErrorInternal
	}

	comment := &models.Comment{
		ID:        id,
		News:      models.NewOwnerRef(key),
		User:      models.NewOwnerRef(actor.ID),
		Username:  actor.Username,
		FullName:  actor.FullName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repomanager.Comments(s.db).Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	return created, nil
}

// ListForNews returns the comments of one article, newest first. Rows
// written before and after the migration live under different owner
// columns, so both are queried and the union deduplicated by comment id.
func (s *CommentService) ListForNews(ctx context.Context, newsID string) ([]*ResolvedComment, error) {
	key, err := hexid.ParseField(newsID, "news")
	if err != nil {
		return nil, err
	}

	if _, err := s.repomanager.News(s.db).GetByID(ctx, key); err != nil {
		return nil, err
	}

	repo := s.repomanager.Comments(s.db)

	modern, err := repo.ListByNewsID(ctx, key)
	if err != nil {
		return nil, err
	}
	legacy, err := repo.ListByNewsRef(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := MergeComments(modern, legacy)

	result := make([]*ResolvedComment, 0, len(merged))
	for _, c := range merged {
		author, err := s.resolver.ResolveUser(ctx, c.User)
		if err != nil {
			return nil, err
		}
		rc := &ResolvedComment{Comment: c}
		if author != nil {
			rc.AuthorID = author.ID
		}
		result = append(result, rc)
	}

	return result, nil
}

// Delete removes a comment the acting identity owns.
func (s *CommentService) Delete(ctx context.Context, actorID, id string) error {
	key, err := hexid.ParseField(id, "comment")
	if err != nil {
		return err
	}

	repo := s.repomanager.Comments(s.db)

	comment, err := repo.GetByID(ctx, key)
	if err != nil {
		return err
	}

	ownerID, err := s.resolver.EffectiveOwnerID(ctx, comment.User)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, ownerID); err != nil {
		return err
	}

	return repo.Delete(ctx, key)
}
