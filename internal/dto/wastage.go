package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
)

type WastageRequest struct {
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Reason      string          `json:"reason"`
	WastageDate string          `json:"wastage_date"`
}

// Bind implements render.Binder.
func (w *WastageRequest) Bind(r *http.Request) error {
	w.ItemName = strings.TrimSpace(w.ItemName)
	if w.ItemName == "" {
		return gerr.InvalidRequest("item name is required")
	}
	if !w.Quantity.IsPositive() {
		return gerr.InvalidRequest("quantity must be positive")
	}
	if w.UnitCost.IsNegative() {
		return gerr.InvalidRequest("unit cost can't be negative")
	}
	_, err := parseDay("wastage_date", w.WastageDate)
	return err
}

func ConvertWastageRequestToEntity(w *WastageRequest) (*entity.WastageInsert, error) {
	d, err := parseDay("wastage_date", w.WastageDate)
	if err != nil {
		return nil, err
	}
	return &entity.WastageInsert{
		ItemName:    w.ItemName,
		Quantity:    w.Quantity,
		UnitCost:    w.UnitCost,
		Reason:      w.Reason,
		WastageDate: d,
	}, nil
}

type Wastage struct {
	Id          int             `json:"id"`
	ExpenseId   *int            `json:"expense_id"`
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Loss        decimal.Decimal `json:"loss"`
	Reason      string          `json:"reason"`
	WastageDate string          `json:"wastage_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ConvertEntityWastageToDto(w *entity.Wastage) Wastage {
	return Wastage{
		Id:          w.Id,
		ExpenseId:   nullInt(w.ExpenseId),
		ItemName:    w.ItemName,
		Quantity:    w.Quantity,
		UnitCost:    w.UnitCost,
		Loss:        w.Cost(),
		Reason:      w.Reason,
		WastageDate: formatDay(w.WastageDate),
		CreatedAt:   w.CreatedAt,
	}
}

func ConvertEntityWastageListToDto(ws []entity.Wastage) []Wastage {
	out := make([]Wastage, 0, len(ws))
	for i := range ws {
		out = append(out, ConvertEntityWastageToDto(&ws[i]))
	}
	return out
}
