package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/dto"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/recurrence"
)

func (s *Server) expenseFromRequest(r *http.Request) (*entity.ExpenseInsert, error) {
	req := &dto.ExpenseRequest{}
	if err := bind(r, req); err != nil {
		return nil, err
	}
	e, err := dto.ConvertExpenseRequestToEntity(req)
	if err != nil {
		return nil, err
	}
	e.Recurrence, err = recurrence.Apply(e.ExpenseDate, req.IsRecurring, req.RecurringFrequency, s.rc.ExpenseHorizon)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Server) addExpense(w http.ResponseWriter, r *http.Request) {
	e, err := s.expenseFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	id, err := s.repo.Expenses().AddExpense(r.Context(), e)
	if err != nil {
		renderError(w, r, err)
		return
	}
	stored, err := s.repo.Expenses().GetExpenseById(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	created(w, r, dto.ConvertEntityExpenseToDto(stored))
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := dto.ExpenseFilter(q.Get("type"), q.Get("start"), q.Get("end"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	es, err := s.repo.Expenses().ListExpenses(r.Context(), f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityExpensesToDto(es))
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	e, err := s.repo.Expenses().GetExpenseById(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityExpenseToDto(e))
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	e, err := s.expenseFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Expenses().UpdateExpense(r.Context(), id, e); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.repo.Expenses().DeleteExpenseById(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	noContent(w)
}
