package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
)

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	tok, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.TokenResponse{Token: tok})
}

func (s *Server) createAdmin(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateAdminRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	tok, err := s.auth.CreateAdmin(r.Context(), req.MasterPassword, req.Username, req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.TokenResponse{Token: tok})
}
