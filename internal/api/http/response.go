package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

// ErrResponse is the body of every failed request.
type ErrResponse struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := "internal server error"
	switch {
	case gerr.IsInvalidRequest(err):
		code, msg = http.StatusBadRequest, err.Error()
	case gerr.IsNotFound(err):
		code, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, gerr.ErrUnauthenticated):
		code, msg = http.StatusUnauthorized, "not authenticated"
	default:
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	render.Status(r, code)
	render.JSON(w, r, ErrResponse{Error: msg})
}

// bind decodes a JSON body into v and validates it.
func bind(r *http.Request, v render.Binder) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return gerr.InvalidRequest("malformed request body")
	}
	return v.Bind(r)
}

func idParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, gerr.InvalidRequest("invalid id %q", raw)
	}
	return id, nil
}

func created(w http.ResponseWriter, r *http.Request, v any) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, v)
}

func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
