package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/document"
	"github.com/jekabolt/resto-manager/internal/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rep, err := s.reports.GetReport(r.Context(), q.Get("period"), q.Get("date"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityReportToDto(rep))
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rep, err := s.reports.GetReport(r.Context(), q.Get("period"), q.Get("date"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	b, err := document.RenderXLSX(rep)
	if err != nil {
		renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s-%s.xlsx"`, rep.Period, rep.Date))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write report export",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
}

// sendReport mails the report to the single address in the request.
func (s *Server) sendReport(w http.ResponseWriter, r *http.Request) {
	req := &dto.SendReportRequest{}
	if err := bind(r, req); err != nil {
		renderError(w, r, err)
		return
	}
	rep, err := s.reports.GetReport(r.Context(), req.Period, req.Date)
	if err != nil {
		renderError(w, r, err)
		return
	}
	pdf, err := document.RenderPDF(rep)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := s.mailer.SendReport(r.Context(), []string{req.Email}, rep, pdf); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"status": "sent"})
}
