package entity

import "github.com/shopspring/decimal"

// ItemSale is one line of a report: an item with its summed quantity and line total.
type ItemSale struct {
	ItemId   int             `db:"item_id"`
	Name     string          `db:"name"`
	Quantity int             `db:"quantity"`
	Total    decimal.Decimal `db:"total"`
}

// Report is the assembled payload used by on-demand and scheduled report delivery.
type Report struct {
	Period   string
	Date     string
	Items    []ItemSale
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// Profit is revenue minus expenses.
func (r *Report) Profit() decimal.Decimal {
	return r.Revenue.Sub(r.Expenses)
}
