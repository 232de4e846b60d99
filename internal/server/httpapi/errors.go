package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/newsportal/internal/common"
)

// ErrResponse is the uniform JSON error body. Internal failure details
// never reach the client, only the generic status text does.
type ErrResponse struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	ErrorText      string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// renderError maps service errors onto HTTP statuses. Anything not
// recognized is reported as a plain 500 with the details logged only.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var resp *ErrResponse

	switch {
	case errors.Is(err, common.ErrBadFormat):
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusBadRequest, StatusText: "Invalid request.", ErrorText: err.Error()}
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusUnauthorized, StatusText: "Unauthorized.", ErrorText: err.Error()}
	case errors.Is(err, common.ErrorForbidden):
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusForbidden, StatusText: "Forbidden.", ErrorText: err.Error()}
	case errors.Is(err, common.ErrorNotFound):
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found.", ErrorText: err.Error()}
	case errors.Is(err, common.ErrorConflict):
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusConflict, StatusText: "Conflict.", ErrorText: err.Error()}
	default:
		s.logger.Error(r.Context(), "internal error", "error", err)
		resp = &ErrResponse{Err: err, HTTPStatusCode: http.StatusInternalServerError, StatusText: "Internal server error."}
	}

	if err := render.Render(w, r, resp); err != nil {
		s.logger.Error(r.Context(), "render error", "error", err)
	}
}
