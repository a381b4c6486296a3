package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Only paid orders count toward revenue.
type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "paid"
)

// Order represents the orders table. Orders are written by the ordering
// subsystem and are read-only here.
type Order struct {
	Id          int             `db:"id"`
	CreatedAt   time.Time       `db:"created_at"`
	Status      OrderStatus     `db:"status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}

// OrderItem represents the order_items table.
type OrderItem struct {
	Id        int             `db:"id"`
	OrderId   int             `db:"order_id"`
	ItemId    int             `db:"item_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"price"`
}
