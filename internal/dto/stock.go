package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
)

type StockRequest struct {
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	PurchaseDate string          `json:"purchase_date"`
	RecurrenceRequest
}

// Bind implements render.Binder.
func (s *StockRequest) Bind(r *http.Request) error {
	s.ItemName = strings.TrimSpace(s.ItemName)
	if s.ItemName == "" {
		return gerr.InvalidRequest("item name is required")
	}
	if !s.Quantity.IsPositive() {
		return gerr.InvalidRequest("quantity must be positive")
	}
	if s.UnitCost.IsNegative() {
		return gerr.InvalidRequest("unit cost can't be negative")
	}
	_, err := parseDay("purchase_date", s.PurchaseDate)
	return err
}

func ConvertStockRequestToEntity(s *StockRequest) (*entity.StockInsert, error) {
	d, err := parseDay("purchase_date", s.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &entity.StockInsert{
		ItemName:     s.ItemName,
		Quantity:     s.Quantity,
		Unit:         s.Unit,
		UnitCost:     s.UnitCost,
		PurchaseDate: d,
	}, nil
}

type Stock struct {
	Id           int             `json:"id"`
	ExpenseId    *int            `json:"expense_id"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	PurchaseDate string          `json:"purchase_date"`
	CreatedAt    time.Time       `json:"created_at"`
	Recurrence
}

func ConvertEntityStockToDto(s *entity.Stock) Stock {
	return Stock{
		Id:           s.Id,
		ExpenseId:    nullInt(s.ExpenseId),
		ItemName:     s.ItemName,
		Quantity:     s.Quantity,
		Unit:         s.Unit,
		UnitCost:     s.UnitCost,
		TotalCost:    s.Cost(),
		PurchaseDate: formatDay(s.PurchaseDate),
		CreatedAt:    s.CreatedAt,
		Recurrence:   convertEntityRecurrence(s.Recurrence),
	}
}

func ConvertEntityStockListToDto(ss []entity.Stock) []Stock {
	out := make([]Stock, 0, len(ss))
	for i := range ss {
		out = append(out, ConvertEntityStockToDto(&ss[i]))
	}
	return out
}
