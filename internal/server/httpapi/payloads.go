package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/newsportal/internal/server/models"
	"github.com/dmitrijs2005/newsportal/internal/server/services"
)

// --- request payloads ---

type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

func (req *RegisterRequest) Bind(r *http.Request) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return errors.New("username, email and password are required")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Bind(r *http.Request) error {
	if req.Username == "" || req.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type NewsRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	ImageURL *string `json:"image_url"`
}

func (req *NewsRequest) Bind(r *http.Request) error {
	if req.Title == "" || req.Content == "" {
		return errors.New("title and content are required")
	}
	return nil
}

// NewsPatchRequest carries a partial update; absent fields stay as they
// are.
type NewsPatchRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

func (req *NewsPatchRequest) Bind(r *http.Request) error {
	if req.Title != nil && *req.Title == "" {
		return errors.New("title must not be empty")
	}
	if req.Content != nil && *req.Content == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

func (req *NewsPatchRequest) Patch() models.NewsPatch {
	return models.NewsPatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}
}

type CommentRequest struct {
	Text string `json:"text"`
}

func (req *CommentRequest) Bind(r *http.Request) error {
	if req.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

// --- response payloads ---

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

func (resp *UserResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func (resp *RegisterResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

func (resp *LoginResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// NewsResponse is one article. Author is null when neither owner form
// points at a live identity.
type NewsResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Category  string        `json:"category"`
	ImageURL  *string       `json:"image_url"`
	Author    *UserResponse `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func NewNewsResponse(item *services.ResolvedNews) *NewsResponse {
	resp := &NewsResponse{
		ID:        item.News.ID,
		Title:     item.News.Title,
		Content:   item.News.Content,
		Category:  item.News.Category,
		ImageURL:  item.News.ImageURL,
		CreatedAt: item.News.CreatedAt,
		UpdatedAt: item.News.UpdatedAt,
	}
	if item.Author != nil {
		resp.Author = NewUserResponse(item.Author)
	}
	return resp
}

func (resp *NewsResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type NewsListResponse struct {
	Count int             `json:"count"`
	News  []*NewsResponse `json:"news"`
}

func NewNewsListResponse(items []*services.ResolvedNews) *NewsListResponse {
	list := make([]*NewsResponse, 0, len(items))
	for _, item := range items {
		list = append(list, NewNewsResponse(item))
	}
	return &NewsListResponse{Count: len(list), News: list}
}

func (resp *NewsListResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// CommentResponse is one comment. Username and FullName come from the
// snapshot stored with the comment; AuthorID is empty when the author
// can no longer be resolved.
type CommentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(c *services.ResolvedComment) *CommentResponse {
	return &CommentResponse{
		ID:        c.Comment.ID,
		Text:      c.Comment.Text,
		Username:  c.Comment.Username,
		FullName:  c.Comment.FullName,
		AuthorID:  c.AuthorID,
		CreatedAt: c.Comment.CreatedAt,
	}
}

func (resp *CommentResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type CommentListResponse struct {
	NewsID   string             `json:"news_id"`
	Count    int                `json:"count"`
	Comments []*CommentResponse `json:"comments"`
}

func NewCommentListResponse(newsID string, items []*services.ResolvedComment) *CommentListResponse {
	list := make([]*CommentResponse, 0, len(items))
	for _, item := range items {
		list = append(list, NewCommentResponse(item))
	}
	return &CommentListResponse{NewsID: newsID, Count: len(list), Comments: list}
}

func (resp *CommentListResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type UploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

func (resp *UploadURLResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type MessageResponse struct {
	Message string `json:"message"`
}

func (resp *MessageResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

type PingResponse struct {
	Status string `json:"status"`
}

func (resp *PingResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }
