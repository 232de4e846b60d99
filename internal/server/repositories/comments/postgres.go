// Package comments provides the PostgreSQL-backed repository for comments.
// The article and author references each keep the dual-form split
// (news_id/news_ref, user_id/user_ref), so listing and cascade deletion
// have one query per schema generation.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

// PostgresRepository implements comment storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, news_id, news_ref, user_id, user_ref, username, full_name, text, created_at`

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, news_id, news_ref, user_id, user_ref, username, full_name, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.News.ID, comment.News.Legacy, comment.User.ID, comment.User.Legacy,
		comment.Username, comment.FullName, comment.Text, comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + selectColumns + ` FROM comments WHERE id = $1`

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.News.ID, &comment.News.Legacy, &comment.User.ID, &comment.User.Legacy,
		&comment.Username, &comment.FullName, &comment.Text, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

// ListByNewsID returns comments whose modern article key matches, newest first.
func (r *PostgresRepository) ListByNewsID(ctx context.Context, newsID string) ([]*models.Comment, error) {
	query := `SELECT ` + selectColumns + ` FROM comments WHERE news_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, newsID)
}

// ListByNewsRef returns comments whose legacy article string matches, newest first.
func (r *PostgresRepository) ListByNewsRef(ctx context.Context, newsRef string) ([]*models.Comment, error) {
	query := `SELECT ` + selectColumns + ` FROM comments WHERE news_ref = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, newsRef)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(
			&comment.ID, &comment.News.ID, &comment.News.Legacy, &comment.User.ID, &comment.User.Legacy,
			&comment.Username, &comment.FullName, &comment.Text, &comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// DeleteByNewsID removes comments attached via the modern article key and
// reports how many rows went away.
func (r *PostgresRepository) DeleteByNewsID(ctx context.Context, newsID string) (int64, error) {
	return r.deleteMany(ctx, `DELETE FROM comments WHERE news_id = $1`, newsID)
}

// DeleteByNewsRef removes comments attached via the legacy article string.
func (r *PostgresRepository) DeleteByNewsRef(ctx context.Context, newsRef string) (int64, error) {
	return r.deleteMany(ctx, `DELETE FROM comments WHERE news_ref = $1`, newsRef)
}

func (r *PostgresRepository) deleteMany(ctx context.Context, query string, arg any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}

	return n, nil
}
