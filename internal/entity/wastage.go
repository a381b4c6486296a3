package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// WastageInsert records spoiled or discarded produce.
type WastageInsert struct {
	ItemName    string          `db:"item_name"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
	Reason      string          `db:"reason"`
	WastageDate time.Time       `db:"wastage_date"`
}

// Cost is the loss booked as a wastage expense.
func (w *WastageInsert) Cost() decimal.Decimal {
	return w.Quantity.Mul(w.UnitCost).Round(2)
}

// Wastage represents the wastage table.
type Wastage struct {
	Id        int           `db:"id"`
	ExpenseId sql.NullInt32 `db:"expense_id"`
	CreatedAt time.Time     `db:"created_at"`
	WastageInsert
}
