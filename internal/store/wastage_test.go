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

var wastageRowColumns = []string{"id", "expense_id", "item_name", "quantity", "unit_cost", "reason", "wastage_date", "created_at"}

func TestAddWastageBooksExpense(t *testing.T) {
	ms, mock := newMockStore(t)
	d := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO expenses`).
		WithArgs("wastage", "6", "Wastage: 3 Tomato (spoiled)", d, false, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec(`INSERT INTO wastage`).
		WithArgs(5, "Tomato", "3", "2", "spoiled", d).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	w, err := ms.Wastage().AddWastage(context.Background(), &entity.WastageInsert{
		ItemName:    "Tomato",
		Quantity:    decimal.NewFromInt(3),
		UnitCost:    decimal.NewFromInt(2),
		Reason:      "spoiled",
		WastageDate: d,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, w.Id)
	assert.Equal(t, int32(5), w.ExpenseId.Int32)
}

func TestUpdateWastageSyncsExpense(t *testing.T) {
	ms, mock := newMockStore(t)
	d := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM wastage WHERE id = \?`).WithArgs(2).
		WillReturnRows(sqlmock.NewRows(wastageRowColumns).AddRow(2, 5, "Tomato", "3", "2", "spoiled", d, d))
	mock.ExpectExec(`UPDATE wastage SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE expenses SET`).
		WithArgs("wastage", "8", "Wastage: 4 Tomato", d, false, nil, nil, nil, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ms.Wastage().UpdateWastage(context.Background(), 2, &entity.WastageInsert{
		ItemName:    "Tomato",
		Quantity:    decimal.NewFromInt(4),
		UnitCost:    decimal.NewFromInt(2),
		WastageDate: d,
	})
	assert.NoError(t, err)
}

func TestDeleteWastageNotFoundRollsBack(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM wastage WHERE id = \?`).WithArgs(7).WillReturnRows(sqlmock.NewRows(wastageRowColumns))
	mock.ExpectRollback()

	assert.True(t, gerr.IsNotFound(ms.Wastage().DeleteWastageById(context.Background(), 7)))
}
