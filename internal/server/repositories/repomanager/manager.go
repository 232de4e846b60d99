// Package repomanager wires concrete repositories to database handles and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/comments"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/news"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, which lets
// services run the same repository code on *sql.DB or inside *sql.Tx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	News(db dbx.DBTX) news.Repository
	Comments(db dbx.DBTX) comments.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
