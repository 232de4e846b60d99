package services

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

// --- in-memory fakes for the repository interfaces ---

type fakeUsersRepo struct {
	users []*models.User

	createErr error
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeNewsRepo struct {
	items []*models.News

	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeNewsRepo) Create(ctx context.Context, item *models.News) (*models.News, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id string) (*models.News, error) {
	for _, n := range f.items {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeNewsRepo) List(ctx context.Context) ([]*models.News, error) {
	result := make([]*models.News, len(f.items))
	copy(result, f.items)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, item *models.News) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, n := range f.items {
		if n.ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeCommentsRepo struct {
	comments []*models.Comment

	createErr          error
	deleteByNewsIDErr  error
	deleteByNewsRefErr error
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.comments = append(f.comments, c)
	return c, nil
}

func (f *fakeCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCommentsRepo) ListByNewsID(ctx context.Context, newsID string) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range f.comments {
		if c.News.HasModern() && *c.News.ID == newsID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommentsRepo) ListByNewsRef(ctx context.Context, newsRef string) ([]*models.Comment, error) {
	var result []*models.Comment
	for _, c := range f.comments {
		if c.News.HasLegacy() && *c.News.Legacy == newsRef {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommentsRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeCommentsRepo) DeleteByNewsID(ctx context.Context, newsID string) (int64, error) {
	if f.deleteByNewsIDErr != nil {
		return 0, f.deleteByNewsIDErr
	}
	return f.deleteWhere(func(c *models.Comment) bool {
		return c.News.HasModern() && *c.News.ID == newsID
	}), nil
}

func (f *fakeCommentsRepo) DeleteByNewsRef(ctx context.Context, newsRef string) (int64, error) {
	if f.deleteByNewsRefErr != nil {
		return 0, f.deleteByNewsRefErr
	}
	return f.deleteWhere(func(c *models.Comment) bool {
		return c.News.HasLegacy() && *c.News.Legacy == newsRef
	}), nil
}

func (f *fakeCommentsRepo) deleteWhere(match func(*models.Comment) bool) int64 {
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

type fakeRepoManager struct {
	u *fakeUsersRepo
	n *fakeNewsRepo
	c *fakeCommentsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		n: &fakeNewsRepo{},
		c: &fakeCommentsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) News(db dbx.DBTX) newsrepo.Repository         { return m.n }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository { return m.c }

func strptr(s string) *string { return &s }
