package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/server/migrations"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/comments"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/news"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) News(db dbx.DBTX) news.Repository {
	return news.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Comments(db dbx.DBTX) comments.Repository {
	return comments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
