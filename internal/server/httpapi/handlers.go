package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request, resp render.Renderer) {
	if err := render.Render(w, r, resp); err != nil {
		s.logger.Error(r.Context(), "render error", "error", err)
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, &PingResponse{Status: "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	data := &RegisterRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, ErrInvalidRequest(err))
		return
	}

	user, err := s.users.Register(r.Context(), data.Username, data.Email, data.Password, data.FullName)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	s.render(w, r, &RegisterResponse{Message: "user registered", UserID: user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	data := &LoginRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, ErrInvalidRequest(err))
		return
	}

	token, user, err := s.users.Login(r.Context(), data.Username, data.Password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(user),
	})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, NewUserResponse(currentUser(r)))
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, NewNewsListResponse(items))
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	item, err := s.news.Get(r.Context(), chi.URLParam(r, "newsID"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, NewNewsResponse(item))
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	data := &NewsRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, ErrInvalidRequest(err))
		return
	}

	actor := currentUser(r)

	created, err := s.news.Create(r.Context(), actor.ID, data.Title, data.Content, data.Category, data.ImageURL)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	item, err := s.news.Get(r.Context(), created.ID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	s.render(w, r, NewNewsResponse(item))
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	data := &NewsPatchRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, ErrInvalidRequest(err))
		return
	}

	actor := currentUser(r)

	updated, err := s.news.Update(r.Context(), actor.ID, chi.URLParam(r, "newsID"), data.Patch())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	item, err := s.news.Get(r.Context(), updated.ID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, NewNewsResponse(item))
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	actor := currentUser(r)

	if err := s.news.Delete(r.Context(), actor.ID, chi.URLParam(r, "newsID")); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, &MessageResponse{Message: "news deleted"})
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	newsID := chi.URLParam(r, "newsID")

	list, err := s.comments.ListForNews(r.Context(), newsID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, NewCommentListResponse(newsID, list))
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	data := &CommentRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, ErrInvalidRequest(err))
		return
	}

	actor := currentUser(r)

	comment, err := s.comments.Create(r.Context(), actor, chi.URLParam(r, "newsID"), data.Text)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	s.render(w, r, &CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		Username:  comment.Username,
		FullName:  comment.FullName,
		AuthorID:  actor.ID,
		CreatedAt: comment.CreatedAt,
	})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	actor := currentUser(r)

	if err := s.comments.Delete(r.Context(), actor.ID, chi.URLParam(r, "commentID")); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, &MessageResponse{Message: "comment deleted"})
}

func (s *Server) handleImageUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.GetPresignedPutURL(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, &UploadURLResponse{Key: key, UploadURL: url})
}
