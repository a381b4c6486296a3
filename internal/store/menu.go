package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

type menuStore struct {
	*MYSQLStore
}

// Menu returns an object implementing the menu interface
func (ms *MYSQLStore) Menu() dependency.Menu {
	return &menuStore{MYSQLStore: ms}
}

// MySQL error number for a failing foreign key on insert or update.
const errNoReferencedRow = 1452

func isErrNoReferencedRow(err error) bool {
	var e *mysql.MySQLError
	return errors.As(err, &e) && e.Number == errNoReferencedRow
}

func (ms *MYSQLStore) AddCategory(ctx context.Context, c *entity.CategoryInsert) (int, error) {
	query := `INSERT INTO categories (name, position) VALUES (:name, :position)`
	id, err := ExecNamedLastId(ctx, ms.db, query, map[string]any{
		"name":     c.Name,
		"position": c.Position,
	})
	if ms.IsErrUniqueViolation(err) {
		return 0, gerr.InvalidRequest("category %q already exists", c.Name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add category: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateCategory(ctx context.Context, id int, c *entity.CategoryInsert) error {
	query := `UPDATE categories SET name = :name, position = :position WHERE id = :id`
	err := ExecNamedAffected(ctx, ms.db, query, map[string]any{
		"id":       id,
		"name":     c.Name,
		"position": c.Position,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return gerr.NotFound("category %d not found", id)
	case ms.IsErrUniqueViolation(err):
		return gerr.InvalidRequest("category %q already exists", c.Name)
	case err != nil:
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) ListCategories(ctx context.Context) ([]entity.Category, error) {
	query := `SELECT id, name, position FROM categories ORDER BY position ASC, id ASC`
	cs, err := QueryListNamed[entity.Category](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cs, nil
}

// DeleteCategoryById removes the category. Its items are removed by cascade.
func (ms *MYSQLStore) DeleteCategoryById(ctx context.Context, id int) error {
	err := ExecNamedAffected(ctx, ms.db, `DELETE FROM categories WHERE id = :id`, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return gerr.NotFound("category %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func itemParams(i *entity.ItemInsert) map[string]any {
	return map[string]any{
		"categoryId":  i.CategoryId,
		"name":        i.Name,
		"description": i.Description,
		"price":       i.Price,
		"image":       i.Image,
		"available":   i.Available,
	}
}

func (ms *MYSQLStore) AddItem(ctx context.Context, i *entity.ItemInsert) (int, error) {
	query := `
		INSERT INTO items (category_id, name, description, price, image, available)
		VALUES (:categoryId, :name, :description, :price, :image, :available)`
	id, err := ExecNamedLastId(ctx, ms.db, query, itemParams(i))
	if isErrNoReferencedRow(err) {
		return 0, gerr.NotFound("category %d not found", i.CategoryId)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add item: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateItem(ctx context.Context, id int, i *entity.ItemInsert) error {
	query := `
		UPDATE items SET
			category_id = :categoryId,
			name = :name,
			description = :description,
			price = :price,
			image = :image,
			available = :available
		WHERE id = :id`
	params := itemParams(i)
	params["id"] = id
	err := ExecNamedAffected(ctx, ms.db, query, params)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return gerr.NotFound("item %d not found", id)
	case isErrNoReferencedRow(err):
		return gerr.NotFound("category %d not found", i.CategoryId)
	case err != nil:
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

const itemColumns = `id, category_id, name, description, price, image, available, created_at`

func (ms *MYSQLStore) GetItemById(ctx context.Context, id int) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = :id`
	i, err := QueryNamedOne[entity.Item](ctx, ms.db, query, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.NotFound("item %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	return &i, nil
}

// ListItems lists all items, or the items of one category when categoryId is positive.
func (ms *MYSQLStore) ListItems(ctx context.Context, categoryId int) ([]entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	params := map[string]any{}
	if categoryId > 0 {
		query += ` WHERE category_id = :categoryId`
		params["categoryId"] = categoryId
	}
	query += ` ORDER BY category_id ASC, name ASC`
	is, err := QueryListNamed[entity.Item](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return is, nil
}

func (ms *MYSQLStore) DeleteItemById(ctx context.Context, id int) error {
	err := ExecNamedAffected(ctx, ms.db, `DELETE FROM items WHERE id = :id`, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return gerr.NotFound("item %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetMenu(ctx context.Context) ([]entity.MenuCategory, error) {
	cs, err := ms.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE available = TRUE ORDER BY name ASC`
	items, err := QueryListNamed[entity.Item](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list available items: %w", err)
	}

	byCategory := make(map[int][]entity.Item, len(cs))
	for _, i := range items {
		byCategory[i.CategoryId] = append(byCategory[i.CategoryId], i)
	}
	menu := make([]entity.MenuCategory, 0, len(cs))
	for _, c := range cs {
		menu = append(menu, entity.MenuCategory{
			Category: c,
			Items:    byCategory[c.Id],
		})
	}
	return menu, nil
}
