package dto

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
)

// RecurrenceRequest is the recurring part of expense and stock payloads.
// Next-due and end dates are always computed server side.
type RecurrenceRequest struct {
	IsRecurring        bool   `json:"is_recurring"`
	RecurringFrequency string `json:"recurring_frequency"`
}

type Recurrence struct {
	IsRecurring          bool    `json:"is_recurring"`
	RecurringFrequency   *string `json:"recurring_frequency"`
	RecurringNextDueDate *string `json:"recurring_next_due_date"`
	RecurringEndDate     *string `json:"recurring_end_date"`
}

func convertEntityRecurrence(r entity.Recurrence) Recurrence {
	return Recurrence{
		IsRecurring:          r.IsRecurring,
		RecurringFrequency:   nullString(r.Frequency),
		RecurringNextDueDate: formatNullDay(r.NextDueDate),
		RecurringEndDate:     formatNullDay(r.EndDate),
	}
}

type ExpenseRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpenseDate string          `json:"expense_date"`
	RecurrenceRequest
}

// Bind implements render.Binder.
func (e *ExpenseRequest) Bind(r *http.Request) error {
	e.Type = strings.TrimSpace(e.Type)
	if e.Type == "" {
		return gerr.InvalidRequest("expense type is required")
	}
	if !e.Amount.IsPositive() {
		return gerr.InvalidRequest("expense amount must be positive")
	}
	_, err := parseDay("expense_date", e.ExpenseDate)
	return err
}

// ConvertExpenseRequestToEntity converts the payload without recurring fields,
// those are filled by the caller.
func ConvertExpenseRequestToEntity(e *ExpenseRequest) (*entity.ExpenseInsert, error) {
	d, err := parseDay("expense_date", e.ExpenseDate)
	if err != nil {
		return nil, err
	}
	return &entity.ExpenseInsert{
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: d,
	}, nil
}

type Expense struct {
	Id          int             `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpenseDate string          `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
	Recurrence
}

func ConvertEntityExpenseToDto(e *entity.Expense) Expense {
	return Expense{
		Id:          e.Id,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: formatDay(e.ExpenseDate),
		CreatedAt:   e.CreatedAt,
		Recurrence:  convertEntityRecurrence(e.Recurrence),
	}
}

func ConvertEntityExpensesToDto(es []entity.Expense) []Expense {
	out := make([]Expense, 0, len(es))
	for i := range es {
		out = append(out, ConvertEntityExpenseToDto(&es[i]))
	}
	return out
}

// ExpenseFilter builds a listing filter from type, start and end query values.
func ExpenseFilter(typ, start, end string) (entity.ExpenseFilter, error) {
	f := entity.ExpenseFilter{Type: strings.TrimSpace(typ)}
	if start != "" {
		t, err := parseDay("start", start)
		if err != nil {
			return entity.ExpenseFilter{}, err
		}
		f.From = t
	}
	if end != "" {
		t, err := parseDay("end", end)
		if err != nil {
			return entity.ExpenseFilter{}, err
		}
		f.To = t.Add(24*time.Hour - time.Second)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return entity.ExpenseFilter{}, gerr.InvalidRequest("end date %q is before start date %q", end, start)
	}
	return f, nil
}

func nullInt(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}
