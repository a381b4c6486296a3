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

func TestAddItemUnknownCategory(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO items`).
		WithArgs(4, "Pizza", "", "12", "menu/pizza.jpg", true).
		WillReturnError(&mysql.MySQLError{Number: errNoReferencedRow})

	_, err := ms.Menu().AddItem(context.Background(), &entity.ItemInsert{
		CategoryId: 4,
		Name:       "Pizza",
		Price:      decimal.NewFromInt(12),
		Image:      sql.NullString{String: "menu/pizza.jpg", Valid: true},
		Available:  true,
	})
	assert.True(t, gerr.IsNotFound(err))
}

func TestAddCategoryDuplicate(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO categories`).
		WithArgs("Pizza", 1).
		WillReturnError(&mysql.MySQLError{Number: errDupEntry})

	_, err := ms.Menu().AddCategory(context.Background(), &entity.CategoryInsert{Name: "Pizza", Position: 1})
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestGetMenuGroupsAvailableItems(t *testing.T) {
	ms, mock := newMockStore(t)
	now := time.Now().UTC()
	itemCols := []string{"id", "category_id", "name", "description", "price", "image", "available", "created_at"}

	mock.ExpectQuery(`SELECT id, name, position FROM categories ORDER BY position ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "position"}).
			AddRow(1, "Pizza", 1).
			AddRow(2, "Drinks", 2).
			AddRow(3, "Seasonal", 3))
	mock.ExpectQuery(`FROM items WHERE available = TRUE ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(10, 2, "Espresso", "", "2.50", nil, true, now).
			AddRow(11, 1, "Margherita", "tomato, mozzarella", "12.00", "menu/margherita.jpg", true, now))

	menu, err := ms.Menu().GetMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 3)
	assert.Equal(t, "Pizza", menu[0].Name)
	require.Len(t, menu[0].Items, 1)
	assert.Equal(t, "Margherita", menu[0].Items[0].Name)
	assert.Equal(t, "Espresso", menu[1].Items[0].Name)
	assert.Empty(t, menu[2].Items)
}
