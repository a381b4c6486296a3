package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

type expenseStore struct {
	*MYSQLStore
}

// Expenses returns an object implementing the expenses interface
func (ms *MYSQLStore) Expenses() dependency.Expenses {
	return &expenseStore{MYSQLStore: ms}
}

const expenseColumns = `id, type, amount, description, expense_date, is_recurring,
	recurring_frequency, recurring_next_due_date, recurring_end_date, created_at`

func expenseParams(e *entity.ExpenseInsert) map[string]any {
	return map[string]any{
		"type":                 e.Type,
		"amount":               e.Amount,
		"description":          e.Description,
		"expenseDate":          e.ExpenseDate,
		"isRecurring":          e.IsRecurring,
		"recurringFrequency":   e.Frequency,
		"recurringNextDueDate": e.NextDueDate,
		"recurringEndDate":     e.EndDate,
	}
}

func (ms *MYSQLStore) AddExpense(ctx context.Context, e *entity.ExpenseInsert) (int, error) {
	query := `
		INSERT INTO expenses (type, amount, description, expense_date, is_recurring,
			recurring_frequency, recurring_next_due_date, recurring_end_date)
		VALUES (:type, :amount, :description, :expenseDate, :isRecurring,
			:recurringFrequency, :recurringNextDueDate, :recurringEndDate)`
	id, err := ExecNamedLastId(ctx, ms.db, query, expenseParams(e))
	if err != nil {
		return 0, fmt.Errorf("failed to add expense: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateExpense(ctx context.Context, id int, e *entity.ExpenseInsert) error {
	query := `
		UPDATE expenses SET
			type = :type,
			amount = :amount,
			description = :description,
			expense_date = :expenseDate,
			is_recurring = :isRecurring,
			recurring_frequency = :recurringFrequency,
			recurring_next_due_date = :recurringNextDueDate,
			recurring_end_date = :recurringEndDate
		WHERE id = :id`
	params := expenseParams(e)
	params["id"] = id
	err := ExecNamedAffected(ctx, ms.db, query, params)
	if errors.Is(err, sql.ErrNoRows) {
		return gerr.NotFound("expense %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetExpenseById(ctx context.Context, id int) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = :id`
	e, err := QueryNamedOne[entity.Expense](ctx, ms.db, query, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.NotFound("expense %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by id: %w", err)
	}
	return &e, nil
}

func (ms *MYSQLStore) ListExpenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1 = 1`
	params := map[string]any{}
	if f.Type != "" {
		query += " AND type = :type"
		params["type"] = f.Type
	}
	if !f.From.IsZero() {
		query += " AND expense_date >= :from"
		params["from"] = f.From
	}
	if !f.To.IsZero() {
		query += " AND expense_date <= :to"
		params["to"] = f.To
	}
	query += " ORDER BY expense_date DESC, id DESC"

	es, err := QueryListNamed[entity.Expense](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return es, nil
}

func (ms *MYSQLStore) DeleteExpenseById(ctx context.Context, id int) error {
	err := ExecNamedAffected(ctx, ms.db, `DELETE FROM expenses WHERE id = :id`, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return gerr.NotFound("expense %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
