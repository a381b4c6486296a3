package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expenseRowColumns = []string{
	"id", "type", "amount", "description", "expense_date", "is_recurring",
	"recurring_frequency", "recurring_next_due_date", "recurring_end_date", "created_at",
}

func TestAddExpenseNonRecurringStoresNulls(t *testing.T) {
	ms, mock := newMockStore(t)
	d := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO expenses`).
		WithArgs("salary", "800", "January", d, false, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := ms.Expenses().AddExpense(context.Background(), &entity.ExpenseInsert{
		Type:        "salary",
		Amount:      decimal.NewFromInt(800),
		Description: "January",
		ExpenseDate: d,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, id)
}

func TestUpdateExpenseNotFound(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE expenses SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := ms.Expenses().UpdateExpense(context.Background(), 99, &entity.ExpenseInsert{Type: "rent", Amount: decimal.NewFromInt(1)})
	assert.True(t, gerr.IsNotFound(err))
}

func TestListExpensesFilters(t *testing.T) {
	ms, mock := newMockStore(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	d := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM expenses WHERE 1 = 1 AND type = \? AND expense_date >= \? AND expense_date <= \? ORDER BY expense_date DESC, id DESC`).
		WithArgs("stock", from, to).
		WillReturnRows(sqlmock.NewRows(expenseRowColumns).
			AddRow(3, "stock", "3.00", "Stock purchase: 2.5 kg Flour", d, true, "monthly", d.AddDate(0, 1, 0), d.AddDate(1, 0, 0), d))

	es, err := ms.Expenses().ListExpenses(context.Background(), entity.ExpenseFilter{Type: "stock", From: from, To: to})
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "stock", es[0].Type)
	assert.True(t, es[0].IsRecurring)
	assert.Equal(t, "monthly", es[0].Frequency.String)
	assert.Equal(t, d.AddDate(0, 1, 0), es[0].NextDueDate.Time)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM expenses WHERE id = \?`).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.True(t, gerr.IsNotFound(ms.Expenses().DeleteExpenseById(context.Background(), 5)))
}
