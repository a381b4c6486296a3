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

type stockStore struct {
	*MYSQLStore
}

// Stock returns an object implementing the stock interface
func (ms *MYSQLStore) Stock() dependency.Stock {
	return &stockStore{MYSQLStore: ms}
}

const stockColumns = `id, expense_id, item_name, quantity, unit, unit_cost, purchase_date, is_recurring,
	recurring_frequency, recurring_next_due_date, recurring_end_date, created_at`

func stockExpense(s *entity.StockInsert) *entity.ExpenseInsert {
	return &entity.ExpenseInsert{
		Type:        entity.ExpenseTypeStock,
		Amount:      s.Cost(),
		Description: fmt.Sprintf("Stock purchase: %s %s %s", s.Quantity.String(), s.Unit, s.ItemName),
		ExpenseDate: s.PurchaseDate,
		Recurrence:  s.Recurrence,
	}
}

func stockParams(s *entity.StockInsert) map[string]any {
	return map[string]any{
		"itemName":             s.ItemName,
		"quantity":             s.Quantity,
		"unit":                 s.Unit,
		"unitCost":             s.UnitCost,
		"purchaseDate":         s.PurchaseDate,
		"isRecurring":          s.IsRecurring,
		"recurringFrequency":   s.Frequency,
		"recurringNextDueDate": s.NextDueDate,
		"recurringEndDate":     s.EndDate,
	}
}

// AddStock writes the purchase and its stock expense in one transaction.
func (ms *MYSQLStore) AddStock(ctx context.Context, s *entity.StockInsert) (*entity.Stock, error) {
	var st *entity.Stock
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		expenseId, err := rep.Expenses().AddExpense(ctx, stockExpense(s))
		if err != nil {
			return err
		}
		query := `
			INSERT INTO stock (expense_id, item_name, quantity, unit, unit_cost, purchase_date, is_recurring,
				recurring_frequency, recurring_next_due_date, recurring_end_date)
			VALUES (:expenseId, :itemName, :quantity, :unit, :unitCost, :purchaseDate, :isRecurring,
				:recurringFrequency, :recurringNextDueDate, :recurringEndDate)`
		params := stockParams(s)
		params["expenseId"] = expenseId
		id, err := ExecNamedLastId(ctx, rep.DB(), query, params)
		if err != nil {
			return fmt.Errorf("failed to insert stock: %w", err)
		}
		st = &entity.Stock{
			Id:          id,
			ExpenseId:   sql.NullInt32{Int32: int32(expenseId), Valid: true},
			CreatedAt:   rep.Now(),
			StockInsert: *s,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add stock: %w", err)
	}
	return st, nil
}

// UpdateStock rewrites the purchase and keeps its linked expense in sync.
func (ms *MYSQLStore) UpdateStock(ctx context.Context, id int, s *entity.StockInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, err := rep.Stock().GetStockById(ctx, id)
		if err != nil {
			return err
		}
		query := `
			UPDATE stock SET
				item_name = :itemName,
				quantity = :quantity,
				unit = :unit,
				unit_cost = :unitCost,
				purchase_date = :purchaseDate,
				is_recurring = :isRecurring,
				recurring_frequency = :recurringFrequency,
				recurring_next_due_date = :recurringNextDueDate,
				recurring_end_date = :recurringEndDate
			WHERE id = :id`
		params := stockParams(s)
		params["id"] = id
		if err := ExecNamed(ctx, rep.DB(), query, params); err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		if cur.ExpenseId.Valid {
			return rep.Expenses().UpdateExpense(ctx, int(cur.ExpenseId.Int32), stockExpense(s))
		}
		return nil
	})
}

func (ms *MYSQLStore) GetStockById(ctx context.Context, id int) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = :id`
	s, err := QueryNamedOne[entity.Stock](ctx, ms.db, query, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.NotFound("stock %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock by id: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) ListStock(ctx context.Context) ([]entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock ORDER BY purchase_date DESC, id DESC`
	ss, err := QueryListNamed[entity.Stock](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return ss, nil
}

// DeleteStockById removes the purchase together with its linked expense.
func (ms *MYSQLStore) DeleteStockById(ctx context.Context, id int) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, err := rep.Stock().GetStockById(ctx, id)
		if err != nil {
			return err
		}
		if err := ExecNamed(ctx, rep.DB(), `DELETE FROM stock WHERE id = :id`, map[string]any{"id": id}); err != nil {
			return fmt.Errorf("failed to delete stock: %w", err)
		}
		if cur.ExpenseId.Valid {
			return rep.Expenses().DeleteExpenseById(ctx, int(cur.ExpenseId.Int32))
		}
		return nil
	})
}
