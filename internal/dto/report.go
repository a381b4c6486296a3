package dto

import (
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
)

type SendReportRequest struct {
	Period string `json:"period"`
	Date   string `json:"date"`
	Email  string `json:"email"`
}

// Bind implements render.Binder. Period and date are checked by the report assembler.
func (s *SendReportRequest) Bind(r *http.Request) error {
	s.Email = strings.TrimSpace(s.Email)
	if !govalidator.IsEmail(s.Email) {
		return gerr.InvalidRequest("invalid email %q", s.Email)
	}
	return nil
}

type ItemSale struct {
	ItemId   int             `json:"item_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type Report struct {
	Period   string          `json:"period"`
	Date     string          `json:"date"`
	Items    []ItemSale      `json:"items"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

func ConvertEntityReportToDto(r *entity.Report) Report {
	items := make([]ItemSale, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ItemSale{
			ItemId:   it.ItemId,
			Name:     it.Name,
			Quantity: it.Quantity,
			Total:    it.Total,
		})
	}
	return Report{
		Period:   r.Period,
		Date:     r.Date,
		Items:    items,
		Revenue:  r.Revenue,
		Expenses: r.Expenses,
		Profit:   r.Profit(),
	}
}
