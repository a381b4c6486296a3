package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryInsert is the writable part of a menu category.
type CategoryInsert struct {
	Name     string `db:"name"`
	Position int    `db:"position"`
}

// Category represents the categories table.
type Category struct {
	Id int `db:"id"`
	CategoryInsert
}

// ItemInsert is the writable part of a menu item.
type ItemInsert struct {
	CategoryId  int             `db:"category_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Image       sql.NullString  `db:"image"`
	Available   bool            `db:"available"`
}

// Item represents the items table.
type Item struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	ItemInsert
}

// MenuCategory is a category with its available items, as shown on the public menu.
type MenuCategory struct {
	Category
	Items []Item
}
