package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/analytics"
	"github.com/jekabolt/resto-manager/internal/dto"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
)

const (
	defaultPopularLimit = 5
	maxPopularLimit     = 100
)

func periodQuery(r *http.Request) (period.Granularity, period.Filter, error) {
	q := r.URL.Query()
	return period.Resolve(period.Query{
		Period: q.Get("period"),
		Date:   q.Get("date"),
		Start:  q.Get("start"),
		End:    q.Get("end"),
	})
}

func rangeQuery(r *http.Request) (period.Filter, error) {
	q := r.URL.Query()
	return period.Range(q.Get("start"), q.Get("end"))
}

func queryOr(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

func (s *Server) getRevenue(w http.ResponseWriter, r *http.Request) {
	g, f, err := periodQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().RevenueByPeriod(r.Context(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertRevenueToDto(rows))
}

func (s *Server) getExpensesByPeriod(w http.ResponseWriter, r *http.Request) {
	g, f, err := periodQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().ExpensesByPeriod(r.Context(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertExpensesToDto(rows))
}

func (s *Server) getNetProfit(w http.ResponseWriter, r *http.Request) {
	g, f, err := periodQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := analytics.NetProfit(r.Context(), s.repo.Analytics(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertNetProfitToDto(rows))
}

func (s *Server) getOrderCount(w http.ResponseWriter, r *http.Request) {
	g, f, err := periodQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().OrderCountByPeriod(r.Context(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertOrderCountToDto(rows))
}

func (s *Server) getPopularItems(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPopularLimit {
			renderError(w, r, gerr.InvalidRequest("limit must be between 1 and %d", maxPopularLimit))
			return
		}
		limit = n
	}
	rows, err := s.repo.Analytics().PopularItems(r.Context(), limit)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertPopularItemsToDto(rows))
}

func (s *Server) getOrderTrends(w http.ResponseWriter, r *http.Request) {
	g, err := period.Parse(queryOr(r, "group", "month"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	f, err := rangeQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().OrderTrends(r.Context(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertOrderTrendsToDto(rows))
}

// getCustomerCount reports the number of paid orders per period. It does not
// count distinct customers.
func (s *Server) getCustomerCount(w http.ResponseWriter, r *http.Request) {
	g, err := period.Parse(queryOr(r, "period", "day"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	if g == period.Yearly {
		renderError(w, r, gerr.InvalidRequest("customer count supports day, week or month"))
		return
	}
	f, err := rangeQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().PaidOrderCountTrend(r.Context(), g, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertCustomerCountToDto(rows))
}

func (s *Server) getRevenueHeatmap(w http.ResponseWriter, r *http.Request) {
	kind := entity.HeatmapKind(queryOr(r, "type", string(entity.HeatmapHourly)))
	f, err := rangeQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rows, err := s.repo.Analytics().RevenueHeatmap(r.Context(), kind, f)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertHeatmapToDto(rows))
}
