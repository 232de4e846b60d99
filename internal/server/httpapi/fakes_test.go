package httpapi

import (
	"context"
	"database/sql"
	"sort"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/dbx"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
	commentsrepo "github.com/dmitrijs2005/newsportal/internal/server/repositories/comments"
	newsrepo "github.com/dmitrijs2005/newsportal/internal/server/repositories/news"
	usersrepo "github.com/dmitrijs2005/newsportal/internal/server/repositories/users"
)

// in-memory repositories backing the full stack in handler tests

type memUsersRepo struct {
	users []*models.User
}

func (f *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memNewsRepo struct {
	items []*models.News
}

func (f *memNewsRepo) Create(ctx context.Context, item *models.News) (*models.News, error) {
	f.items = append(f.items, item)
	return item, nil
}

func (f *memNewsRepo) GetByID(ctx context.Context, id string) (*models.News, error) {
	for _, n := range f.items {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memNewsRepo) List(ctx context.Context) ([]*models.News, error) {
	result := make([]*models.News, len(f.items))
	copy(result, f.items)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *memNewsRepo) Update(ctx context.Context, item *models.News) error {
	for i, n := range f.items {
		if n.ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memNewsRepo) Delete(ctx context.Context, id string) error {
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type memCommentsRepo struct {
	comments []*models.Comment
}

func (f *memCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	f.comments = append(f.comments, c)
	return c, nil
}

func (f *memCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memCommentsRepo) ListByNewsID(ctx context.Context, newsID string) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range f.comments {
		if c.News.HasModern() && *c.News.ID == newsID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *memCommentsRepo) ListByNewsRef(ctx context.Context, newsRef string) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range f.comments {
		if c.News.HasLegacy() && *c.News.Legacy == newsRef {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *memCommentsRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memCommentsRepo) DeleteByNewsID(ctx context.Context, newsID string) (int64, error) {
	return f.deleteWhere(func(c *models.Comment) bool {
		return c.News.HasModern() && *c.News.ID == newsID
	}), nil
}

func (f *memCommentsRepo) DeleteByNewsRef(ctx context.Context, newsRef string) (int64, error) {
	return f.deleteWhere(func(c *models.Comment) bool {
		return c.News.HasLegacy() && *c.News.Legacy == newsRef
	}), nil
}

func (f *memCommentsRepo) deleteWhere(match func(*models.Comment) bool) int64 {
	var kept []*models.Comment
	var deleted int64
	for _, c := range f.comments {
		if match(c) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	f.comments = kept
	return deleted
}

type memRepoManager struct {
	u *memUsersRepo
	n *memNewsRepo
	c *memCommentsRepo
}

func newMemRepoManager() *memRepoManager {
	return &memRepoManager{
		u: &memUsersRepo{},
		n: &memNewsRepo{},
		c: &memCommentsRepo{},
	}
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *memRepoManager) News(db dbx.DBTX) newsrepo.Repository         { return m.n }
func (m *memRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository { return m.c }
