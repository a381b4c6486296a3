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

type CategoryRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Bind implements render.Binder.
func (c *CategoryRequest) Bind(r *http.Request) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return gerr.InvalidRequest("category name is required")
	}
	if c.Position < 0 {
		return gerr.InvalidRequest("category position can't be negative")
	}
	return nil
}

func ConvertCategoryRequestToEntity(c *CategoryRequest) *entity.CategoryInsert {
	return &entity.CategoryInsert{Name: c.Name, Position: c.Position}
}

type Category struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func ConvertEntityCategoriesToDto(cs []entity.Category) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category{Id: c.Id, Name: c.Name, Position: c.Position})
	}
	return out
}

type ItemRequest struct {
	CategoryId  int             `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Available   *bool           `json:"available"`
}

// Bind implements render.Binder.
func (i *ItemRequest) Bind(r *http.Request) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return gerr.InvalidRequest("item name is required")
	}
	if i.CategoryId <= 0 {
		return gerr.InvalidRequest("category_id is required")
	}
	if !i.Price.IsPositive() {
		return gerr.InvalidRequest("item price must be positive")
	}
	i.Image = strings.TrimSpace(i.Image)
	return ValidateImagePath(i.Image)
}

// ValidateImagePath accepts an empty path or a relative path that stays inside
// the image root.
func ValidateImagePath(p string) error {
	if p == "" {
		return nil
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) || strings.Contains(p, ":") {
		return gerr.InvalidRequest("image path %q must be relative", p)
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return gerr.InvalidRequest("image path %q must not leave the image directory", p)
		}
	}
	return nil
}

func ConvertItemRequestToEntity(i *ItemRequest) *entity.ItemInsert {
	available := true
	if i.Available != nil {
		available = *i.Available
	}
	return &entity.ItemInsert{
		CategoryId:  i.CategoryId,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Image:       sql.NullString{String: i.Image, Valid: i.Image != ""},
		Available:   available,
	}
}

type Item struct {
	Id          int             `json:"id"`
	CategoryId  int             `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ConvertEntityItemToDto(i *entity.Item) Item {
	return Item{
		Id:          i.Id,
		CategoryId:  i.CategoryId,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Image:       nullString(i.Image),
		Available:   i.Available,
		CreatedAt:   i.CreatedAt,
	}
}

func ConvertEntityItemsToDto(is []entity.Item) []Item {
	out := make([]Item, 0, len(is))
	for i := range is {
		out = append(out, ConvertEntityItemToDto(&is[i]))
	}
	return out
}

type MenuCategory struct {
	Category
	Items []Item `json:"items"`
}

func ConvertEntityMenuToDto(mcs []entity.MenuCategory) []MenuCategory {
	out := make([]MenuCategory, 0, len(mcs))
	for _, mc := range mcs {
		out = append(out, MenuCategory{
			Category: Category{Id: mc.Id, Name: mc.Name, Position: mc.Position},
			Items:    ConvertEntityItemsToDto(mc.Items),
		})
	}
	return out
}
