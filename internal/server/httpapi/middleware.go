package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/server/auth"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth validates the bearer token and loads the acting identity
// into the request context. The token subject must reference a live
// user; tokens surviving account deletion do not authenticate.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
			s.renderError(w, r, common.ErrorUnauthorized)
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		user, err := s.users.GetByID(r.Context(), userID)
		if err != nil {
			s.renderError(w, r, common.ErrorUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the identity loaded by requireAuth. Handlers
// behind the middleware may assume it is present.
func currentUser(r *http.Request) *models.User {
	return r.Context().Value(userKey).(*models.User)
}
