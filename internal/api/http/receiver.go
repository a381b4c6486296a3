package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
)

func (s *Server) listReceivers(w http.ResponseWriter, r *http.Request) {
	rs, err := s.repo.ReportReceivers().ListReceivers(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityReportReceiversToDto(rs))
}

func (s *Server) addReceiver(w http.ResponseWriter, r *http.Request) {
	req := &dto.ReportReceiverRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	id, err := s.repo.ReportReceivers().AddReceiver(r.Context(), dto.ConvertReportReceiverRequestToEntity(req))
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, map[string]int{"id": id})
}

func (s *Server) updateReceiver(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	req := &dto.ReportReceiverRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.ReportReceivers().UpdateReceiver(r.Context(), id, dto.ConvertReportReceiverRequestToEntity(req)); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteReceiver(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.ReportReceivers().DeleteReceiverById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}
