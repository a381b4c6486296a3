package dto

import (
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/shopspring/decimal"
)

type RevenueRow struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ExpensesRow struct {
	Period   string          `json:"period"`
	Expenses decimal.Decimal `json:"expenses"`
}

type NetRow struct {
	Period   string          `json:"period"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

type OrdersRow struct {
	Period string `json:"period"`
	Orders int    `json:"orders"`
}

// CustomersRow carries the paid order count of a period under the customers key.
type CustomersRow struct {
	Period    string `json:"period"`
	Customers int    `json:"customers"`
}

type PopularItem struct {
	ItemId   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderTrend struct {
	Period string          `json:"period"`
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

type HeatmapBucket struct {
	Bucket  int             `json:"bucket"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

func ConvertRevenueToDto(rows []entity.PeriodValue) []RevenueRow {
	out := make([]RevenueRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, RevenueRow{Period: r.Period, Revenue: r.Value})
	}
	return out
}

func ConvertExpensesToDto(rows []entity.PeriodValue) []ExpensesRow {
	out := make([]ExpensesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExpensesRow{Period: r.Period, Expenses: r.Value})
	}
	return out
}

func ConvertNetProfitToDto(rows []entity.NetProfit) []NetRow {
	out := make([]NetRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, NetRow{Period: r.Period, Revenue: r.Revenue, Expenses: r.Expenses, Net: r.Net})
	}
	return out
}

func ConvertOrderCountToDto(rows []entity.PeriodCount) []OrdersRow {
	out := make([]OrdersRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrdersRow{Period: r.Period, Orders: r.Count})
	}
	return out
}

func ConvertCustomerCountToDto(rows []entity.PeriodCount) []CustomersRow {
	out := make([]CustomersRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, CustomersRow{Period: r.Period, Customers: r.Count})
	}
	return out
}

func ConvertPopularItemsToDto(rows []entity.PopularItem) []PopularItem {
	out := make([]PopularItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, PopularItem{ItemId: r.ItemId, Name: r.Name, Quantity: r.Quantity})
	}
	return out
}

func ConvertOrderTrendsToDto(rows []entity.OrderTrend) []OrderTrend {
	out := make([]OrderTrend, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderTrend{Period: r.Period, Orders: r.Orders, Total: r.Total})
	}
	return out
}

func ConvertHeatmapToDto(rows []entity.HeatmapBucket) []HeatmapBucket {
	out := make([]HeatmapBucket, 0, len(rows))
	for _, r := range rows {
		out = append(out, HeatmapBucket{Bucket: r.Bucket, Revenue: r.Revenue, Orders: r.Orders})
	}
	return out
}
