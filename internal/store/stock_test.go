package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockInsert() *entity.StockInsert {
	return &entity.StockInsert{
		ItemName:     "Flour",
		Quantity:     decimal.RequireFromString("2.5"),
		Unit:         "kg",
		UnitCost:     decimal.RequireFromString("1.20"),
		PurchaseDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Recurrence: entity.Recurrence{
			IsRecurring: true,
			Frequency:   sql.NullString{String: "monthly", Valid: true},
			NextDueDate: sql.NullTime{Time: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Valid: true},
			EndDate:     sql.NullTime{Time: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		},
	}
}

func TestAddStockWritesExpenseInSameTx(t *testing.T) {
	ms, mock := newMockStore(t)
	s := stockInsert()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO expenses`).
		WithArgs("stock", "3", sqlmock.AnyArg(), s.PurchaseDate, true, "monthly", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO stock`).
		WithArgs(7, "Flour", "2.5", "kg", "1.2", s.PurchaseDate, true, "monthly", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	st, err := ms.Stock().AddStock(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Id)
	assert.Equal(t, int32(7), st.ExpenseId.Int32)
	assert.Equal(t, "Flour", st.ItemName)
}

func TestAddStockRollsBackOnFailure(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO expenses`).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO stock`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := ms.Stock().AddStock(context.Background(), stockInsert())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAddStockRetriesDeadlock(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO expenses`).WillReturnError(&mysql.MySQLError{Number: errLockDeadlock})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO expenses`).WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec(`INSERT INTO stock`).WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	st, err := ms.Stock().AddStock(context.Background(), stockInsert())
	require.NoError(t, err)
	assert.Equal(t, int32(8), st.ExpenseId.Int32)
}

func TestDeleteStockRemovesLinkedExpense(t *testing.T) {
	ms, mock := newMockStore(t)
	s := stockInsert()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM stock WHERE id = \?`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "expense_id", "item_name", "quantity", "unit", "unit_cost", "purchase_date", "is_recurring",
			"recurring_frequency", "recurring_next_due_date", "recurring_end_date", "created_at",
		}).AddRow(3, 7, s.ItemName, "2.5", s.Unit, "1.2", s.PurchaseDate, true, "monthly", s.NextDueDate.Time, s.EndDate.Time, s.PurchaseDate))
	mock.ExpectExec(`DELETE FROM stock WHERE id = \?`).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM expenses WHERE id = \?`).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, ms.Stock().DeleteStockById(context.Background(), 3))
}

func TestGetStockByIdNotFound(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`FROM stock WHERE id = \?`).WithArgs(99).WillReturnError(sql.ErrNoRows)

	_, err := ms.Stock().GetStockById(context.Background(), 99)
	assert.True(t, gerr.IsNotFound(err))
}
