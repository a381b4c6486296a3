package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the recurrence step of a recurring expense or stock purchase.
type Frequency string

const (
	FrequencyNone    Frequency = "none"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Expense types written automatically by stock and wastage entries.
const (
	ExpenseTypeStock   = "stock"
	ExpenseTypeWastage = "wastage"
)

// Recurrence holds the computed recurring fields shared by expenses and stock purchases.
type Recurrence struct {
	IsRecurring bool           `db:"is_recurring"`
	Frequency   sql.NullString `db:"recurring_frequency"`
	NextDueDate sql.NullTime   `db:"recurring_next_due_date"`
	EndDate     sql.NullTime   `db:"recurring_end_date"`
}

// ExpenseInsert is the writable part of an expense.
type ExpenseInsert struct {
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	ExpenseDate time.Time       `db:"expense_date"`
	Recurrence
}

// Expense represents the expenses table.
type Expense struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	ExpenseInsert
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Type string
	From time.Time
	To   time.Time
}
