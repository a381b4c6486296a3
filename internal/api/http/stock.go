package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/recurrence"
)

func (s *Server) stockFromRequest(r *http.Request) (*entity.StockInsert, error) {
	req := &dto.StockRequest{}
	if err := bind(r, req); err != nil {
		return nil, err
	}
	st, err := dto.ConvertStockRequestToEntity(req)
	if err != nil {
		return nil, err
	}
	st.Recurrence, err = recurrence.Apply(st.PurchaseDate, req.IsRecurring, req.RecurringFrequency, s.rc.StockHorizon)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Server) addStock(w http.ResponseWriter, r *http.Request) {
	in, err := s.stockFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	st, err := s.repo.Stock().AddStock(r.Context(), in)
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.ConvertEntityStockToDto(st))
}

func (s *Server) listStock(w http.ResponseWriter, r *http.Request) {
	ss, err := s.repo.Stock().ListStock(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityStockListToDto(ss))
}

func (s *Server) getStock(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	st, err := s.repo.Stock().GetStockById(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityStockToDto(st))
}

func (s *Server) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	in, err := s.stockFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Stock().UpdateStock(r.Context(), id, in); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Stock().DeleteStockById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}
