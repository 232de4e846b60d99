package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/hexid"
	"github.com/dmitrijs2005/newsportal/internal/server/auth"
	"github.com/dmitrijs2005/newsportal/internal/server/config"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
	"github.com/dmitrijs2005/newsportal/internal/server/repositories/repomanager"
)

// UserService provides identity operations:
// - Register: create users (username and email must both be free)
// - Login: verify credentials and mint an access token
// - GetByID: load the identity behind a token subject
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new identity. A username or email already present
// yields common.ErrorConflict naming the duplicated field.
func (s *UserService) Register(ctx context.Context, username, email, password string, fullName *string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %w", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %w", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	id, err := hexid.New()
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		Password:  hashed,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login verifies the password against the stored credential and, on
// success, returns a signed access token together with the identity.
// Unknown usernames and wrong passwords are indistinguishable to callers.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// GetByID loads an identity by its key. The id is validated first, so a
// garbage token subject surfaces as a bad-format error rather than a
// store query.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	key, err := hexid.ParseField(id, "user")
	if err != nil {
		return nil, err
	}

	return s.repomanager.Users(s.db).GetByID(ctx, key)
}
