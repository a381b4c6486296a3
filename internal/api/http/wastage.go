package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
)

func (s *Server) addWastage(w http.ResponseWriter, r *http.Request) {
	req := &dto.WastageRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	in, err := dto.ConvertWastageRequestToEntity(req)
	if err != nil {
		renderError(w, r, err)
		return
	}
	ws, err := s.repo.Wastage().AddWastage(r.Context(), in)
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.ConvertEntityWastageToDto(ws))
}

func (s *Server) listWastage(w http.ResponseWriter, r *http.Request) {
	ws, err := s.repo.Wastage().ListWastage(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityWastageListToDto(ws))
}

func (s *Server) updateWastage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	req := &dto.WastageRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	in, err := dto.ConvertWastageRequestToEntity(req)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Wastage().UpdateWastage(r.Context(), id, in); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteWastage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Wastage().DeleteWastageById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}
