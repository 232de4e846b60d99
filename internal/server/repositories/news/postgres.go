// Package news provides the PostgreSQL-backed repository for articles.
// Rows carry both owner forms (author_id modern key, author_ref legacy
// string); the repository reads them verbatim and leaves resolution to the
// service layer.
package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

// PostgresRepository implements news storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.News) (*models.News, error) {
	query := `
		INSERT INTO news (id, title, content, category, image_url, author_id, author_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Content, item.Category, item.ImageURL,
		item.Author.ID, item.Author.Legacy, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.News, error) {
	query := `
		SELECT id, title, content, category, image_url, author_id, author_ref, created_at, updated_at
		FROM news
		WHERE id = $1
	`
	item := &models.News{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Content, &item.Category, &item.ImageURL,
		&item.Author.ID, &item.Author.Legacy, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// List returns all articles, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.News, error) {
	query := `
		SELECT id, title, content, category, image_url, author_id, author_ref, created_at, updated_at
		FROM news
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.News
	for rows.Next() {
		item := &models.News{}
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Content, &item.Category, &item.ImageURL,
			&item.Author.ID, &item.Author.Legacy, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Update rewrites the mutable fields of an article. The owner columns are
// intentionally not touched: resolution never heals the schema split.
func (r *PostgresRepository) Update(ctx context.Context, item *models.News) error {
	query := `
		UPDATE news
		SET title = $2, content = $3, category = $4, image_url = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Content, item.Category, item.ImageURL, item.UpdatedAt)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
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
