package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// StockInsert is a stock purchase. Each purchase owns one expense row of type stock.
type StockInsert struct {
	ItemName     string          `db:"item_name"`
	Quantity     decimal.Decimal `db:"quantity"`
	Unit         string          `db:"unit"`
	UnitCost     decimal.Decimal `db:"unit_cost"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Recurrence
}

// Cost is the total amount booked as expense for the purchase.
func (s *StockInsert) Cost() decimal.Decimal {
	return s.Quantity.Mul(s.UnitCost).Round(2)
}

// Stock represents the stock table.
type Stock struct {
	Id        int           `db:"id"`
	ExpenseId sql.NullInt32 `db:"expense_id"`
	CreatedAt time.Time     `db:"created_at"`
	StockInsert
}
