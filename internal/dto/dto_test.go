package dto

import (
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImagePath(t *testing.T) {
	for _, p := range []string{"", "pizza.jpg", "menu/2024/pizza.jpg", "a..b/c.png"} {
		assert.NoError(t, ValidateImagePath(p), p)
	}
	for _, p := range []string{"/etc/passwd", `\\server\share`, "../secret.png", "menu/../../x.png", `menu\..\x.png`, "C:/x.png", "http://evil/x.png"} {
		assert.True(t, gerr.IsInvalidRequest(ValidateImagePath(p)), p)
	}
}

func TestExpenseRequestBind(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	ok := &ExpenseRequest{Type: " salary ", Amount: decimal.NewFromInt(100), ExpenseDate: "2024-01-10"}
	require.NoError(t, ok.Bind(r))
	assert.Equal(t, "salary", ok.Type)

	bad := []*ExpenseRequest{
		{Amount: decimal.NewFromInt(1), ExpenseDate: "2024-01-10"},
		{Type: "rent", Amount: decimal.Zero, ExpenseDate: "2024-01-10"},
		{Type: "rent", Amount: decimal.NewFromInt(1), ExpenseDate: "2024-1-10"},
		{Type: "rent", Amount: decimal.NewFromInt(1)},
	}
	for _, e := range bad {
		assert.True(t, gerr.IsInvalidRequest(e.Bind(r)))
	}
}

func TestExpenseFilter(t *testing.T) {
	f, err := ExpenseFilter("stock", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "stock", f.Type)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), f.To)

	_, err = ExpenseFilter("", "2024-02-01", "2024-01-01")
	assert.True(t, gerr.IsInvalidRequest(err))

	_, err = ExpenseFilter("", "yesterday", "")
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestConvertEntityExpenseToDto(t *testing.T) {
	e := &entity.Expense{
		Id: 4,
		ExpenseInsert: entity.ExpenseInsert{
			Type:        "rent",
			Amount:      decimal.RequireFromString("1500.00"),
			ExpenseDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Recurrence: entity.Recurrence{
				IsRecurring: true,
				Frequency:   sql.NullString{String: "monthly", Valid: true},
				NextDueDate: sql.NullTime{Time: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Valid: true},
				EndDate:     sql.NullTime{Time: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
			},
		},
	}
	d := ConvertEntityExpenseToDto(e)
	assert.Equal(t, "2024-01-10", d.ExpenseDate)
	require.NotNil(t, d.RecurringNextDueDate)
	assert.Equal(t, "2024-02-10", *d.RecurringNextDueDate)
	assert.Equal(t, "2024-03-10", *d.RecurringEndDate)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"recurring_frequency":"monthly"`)
	assert.Contains(t, string(b), `"is_recurring":true`)
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	b, err := json.Marshal(ConvertRevenueToDto(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	rep := ConvertEntityReportToDto(&entity.Report{Period: "daily", Date: "2024-01-15", Revenue: decimal.Zero, Expenses: decimal.Zero})
	b, err = json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"items":[]`)
	assert.Contains(t, string(b), `"revenue":"0"`)
}

func TestItemRequestDefaultsToAvailable(t *testing.T) {
	i := &ItemRequest{CategoryId: 1, Name: "Pizza", Price: decimal.NewFromInt(12), Image: "menu/pizza.jpg"}
	require.NoError(t, i.Bind(httptest.NewRequest("POST", "/", nil)))
	ins := ConvertItemRequestToEntity(i)
	assert.True(t, ins.Available)
	assert.Equal(t, sql.NullString{String: "menu/pizza.jpg", Valid: true}, ins.Image)
}

func TestReportReceiverRequestBind(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	assert.NoError(t, (&ReportReceiverRequest{AdminId: 1}).Bind(r))
	assert.NoError(t, (&ReportReceiverRequest{AdminId: 1, Email: "owner@resto.test"}).Bind(r))
	assert.True(t, gerr.IsInvalidRequest((&ReportReceiverRequest{AdminId: 1, Email: "nope"}).Bind(r)))
	assert.True(t, gerr.IsInvalidRequest((&ReportReceiverRequest{Email: "owner@resto.test"}).Bind(r)))
}
