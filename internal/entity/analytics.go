package entity

import "github.com/shopspring/decimal"

// PeriodValue pairs a period label with a money aggregate.
type PeriodValue struct {
	Period string          `db:"period"`
	Value  decimal.Decimal `db:"value"`
}

// PeriodCount pairs a period label with a row count.
type PeriodCount struct {
	Period string `db:"period"`
	Count  int    `db:"cnt"`
}

// NetProfit is revenue and expenses of one period merged together.
type NetProfit struct {
	Period   string
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// OrderTrend is the paid order count and paid total for one month or year.
type OrderTrend struct {
	Period string          `db:"period"`
	Orders int             `db:"cnt"`
	Total  decimal.Decimal `db:"total"`
}

// PopularItem is a menu item ranked by quantity sold.
type PopularItem struct {
	ItemId   int    `db:"item_id"`
	Name     string `db:"name"`
	Quantity int    `db:"quantity"`
}

// HeatmapKind selects the bucket of the revenue heatmap.
type HeatmapKind string

const (
	HeatmapHourly HeatmapKind = "hourly"
	HeatmapWeekly HeatmapKind = "weekly"
)

// HeatmapBucket is revenue for an hour of day (0-23) or an ISO weekday (1=Mon .. 7=Sun).
type HeatmapBucket struct {
	Bucket  int             `db:"bucket"`
	Revenue decimal.Decimal `db:"revenue"`
	Orders  int             `db:"cnt"`
}
