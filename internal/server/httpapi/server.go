// Package httpapi exposes the public REST surface: registration and
// login, the news CRUD endpoints, comments, and presigned image upload
// URLs. Handlers stay thin and delegate to the services layer.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/newsportal/internal/logging"
	"github.com/dmitrijs2005/newsportal/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	news      *services.NewsService
	comments  *services.CommentService
	images    *services.ImageService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, ns *services.NewsService,
	cs *services.CommentService, is *services.ImageService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		news:      ns,
		comments:  cs,
		images:    is,
		jwtSecret: []byte(secretKey),
	}
}

// Router assembles the route tree. Kept separate from Run so tests can
// drive the full stack through httptest without a listener.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/ping", s.handlePing)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/users/me", s.handleCurrentUser)
	})

	r.Route("/news", func(r chi.Router) {
		r.Get("/", s.handleListNews)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateNews)
			r.Get("/images/upload-url", s.handleImageUploadURL)
		})

		r.Route("/{newsID}", func(r chi.Router) {
			r.Get("/", s.handleGetNews)
			r.Get("/comments", s.handleListComments)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Patch("/", s.handleUpdateNews)
				r.Delete("/", s.handleDeleteNews)
				r.Post("/comments", s.handleCreateComment)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Delete("/comments/{commentID}", s.handleDeleteComment)
	})

	return r
}

// Run serves the API until the context is cancelled, then shuts the
// listener down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
