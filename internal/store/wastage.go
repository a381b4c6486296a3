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

type wastageStore struct {
	*MYSQLStore
}

// Wastage returns an object implementing the wastage interface
func (ms *MYSQLStore) Wastage() dependency.Wastage {
	return &wastageStore{MYSQLStore: ms}
}

func wastageExpense(w *entity.WastageInsert) *entity.ExpenseInsert {
	desc := fmt.Sprintf("Wastage: %s %s", w.Quantity.String(), w.ItemName)
	if w.Reason != "" {
		desc += " (" + w.Reason + ")"
	}
	return &entity.ExpenseInsert{
		Type:        entity.ExpenseTypeWastage,
		Amount:      w.Cost(),
		Description: desc,
		ExpenseDate: w.WastageDate,
	}
}

func wastageParams(w *entity.WastageInsert) map[string]any {
	return map[string]any{
		"itemName":    w.ItemName,
		"quantity":    w.Quantity,
		"unitCost":    w.UnitCost,
		"reason":      w.Reason,
		"wastageDate": w.WastageDate,
	}
}

func (ms *MYSQLStore) AddWastage(ctx context.Context, w *entity.WastageInsert) (*entity.Wastage, error) {
	var wst *entity.Wastage
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		expenseId, err := rep.Expenses().AddExpense(ctx, wastageExpense(w))
		if err != nil {
			return err
		}
		query := `
			INSERT INTO wastage (expense_id, item_name, quantity, unit_cost, reason, wastage_date)
			VALUES (:expenseId, :itemName, :quantity, :unitCost, :reason, :wastageDate)`
		params := wastageParams(w)
		params["expenseId"] = expenseId
		id, err := ExecNamedLastId(ctx, rep.DB(), query, params)
		if err != nil {
			return fmt.Errorf("failed to insert wastage: %w", err)
		}
		wst = &entity.Wastage{
			Id:            id,
			ExpenseId:     sql.NullInt32{Int32: int32(expenseId), Valid: true},
			CreatedAt:     rep.Now(),
			WastageInsert: *w,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add wastage: %w", err)
	}
	return wst, nil
}

func getWastageById(ctx context.Context, conn dependency.DB, id int) (*entity.Wastage, error) {
	query := `SELECT id, expense_id, item_name, quantity, unit_cost, reason, wastage_date, created_at
		FROM wastage WHERE id = :id`
	w, err := QueryNamedOne[entity.Wastage](ctx, conn, query, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.NotFound("wastage %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wastage by id: %w", err)
	}
	return &w, nil
}

func (ms *MYSQLStore) UpdateWastage(ctx context.Context, id int, w *entity.WastageInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, err := getWastageById(ctx, rep.DB(), id)
		if err != nil {
			return err
		}
		query := `
			UPDATE wastage SET
				item_name = :itemName,
				quantity = :quantity,
				unit_cost = :unitCost,
				reason = :reason,
				wastage_date = :wastageDate
			WHERE id = :id`
		params := wastageParams(w)
		params["id"] = id
		if err := ExecNamed(ctx, rep.DB(), query, params); err != nil {
			return fmt.Errorf("failed to update wastage: %w", err)
		}
		if cur.ExpenseId.Valid {
			return rep.Expenses().UpdateExpense(ctx, int(cur.ExpenseId.Int32), wastageExpense(w))
		}
		return nil
	})
}

func (ms *MYSQLStore) ListWastage(ctx context.Context) ([]entity.Wastage, error) {
	query := `SELECT id, expense_id, item_name, quantity, unit_cost, reason, wastage_date, created_at
		FROM wastage ORDER BY wastage_date DESC, id DESC`
	ws, err := QueryListNamed[entity.Wastage](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list wastage: %w", err)
	}
	return ws, nil
}

func (ms *MYSQLStore) DeleteWastageById(ctx context.Context, id int) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, err := getWastageById(ctx, rep.DB(), id)
		if err != nil {
			return err
		}
		if err := ExecNamed(ctx, rep.DB(), `DELETE FROM wastage WHERE id = :id`, map[string]any{"id": id}); err != nil {
			return fmt.Errorf("failed to delete wastage: %w", err)
		}
		if cur.ExpenseId.Valid {
			return rep.Expenses().DeleteExpenseById(ctx, int(cur.ExpenseId.Int32))
		}
		return nil
	})
}
