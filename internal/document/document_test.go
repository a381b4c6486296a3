package document

import (
	"bytes"
	"testing"

	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReport() *entity.Report {
	return &entity.Report{
		Period: "daily",
		Date:   "2024-01-15",
		Items: []entity.ItemSale{
			{ItemId: 1, Name: "Pizza", Quantity: 3, Total: decimal.RequireFromString("36.00")},
			{ItemId: 2, Name: "Cola", Quantity: 4, Total: decimal.RequireFromString("10.00")},
		},
		Revenue:  decimal.RequireFromString("46.00"),
		Expenses: decimal.RequireFromString("12.50"),
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Daily report 2024-01-15", Title(testReport()))
}

func TestRenderPDF(t *testing.T) {
	b, err := RenderPDF(testReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	empty := &entity.Report{Period: "yearly", Date: "2023"}
	b, err = RenderPDF(empty)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestRenderPDFEncodesCp1252(t *testing.T) {
	r := testReport()
	r.Items = append(r.Items, entity.ItemSale{ItemId: 3, Name: "Café crème", Quantity: 2, Total: decimal.RequireFromString("7.00")})

	b, err := renderPDF(r, false)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Caf\xe9 cr\xe8me")
	assert.NotContains(t, string(b), "Café crème")
}

func TestRenderXLSX(t *testing.T) {
	b, err := RenderXLSX(testReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Daily report 2024-01-15", title)

	item, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", item)

	qty, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "4", qty)

	profit, err := f.GetCellValue(sheetName, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Profit", profit)
	v, err := f.GetCellValue(sheetName, "C9")
	require.NoError(t, err)
	assert.Equal(t, "33.5", v)
}
