package document

import (
	"fmt"

	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// RenderXLSX writes the same report as a single-sheet workbook.
func RenderXLSX(r *entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("can't name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("can't create style: %w", err)
	}

	rows := [][]any{
		{Title(r)},
		{},
		{"Item", "Qty", "Total"},
	}
	for _, it := range r.Items {
		rows = append(rows, []any{it.Name, it.Quantity, it.Total.InexactFloat64()})
	}
	rows = append(rows,
		[]any{},
		[]any{"Revenue", "", r.Revenue.InexactFloat64()},
		[]any{"Expenses", "", r.Expenses.InexactFloat64()},
		[]any{"Profit", "", r.Profit().InexactFloat64()},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("can't write row %d: %w", i+1, err)
		}
	}

	if err := f.SetCellStyle(sheetName, "A1", "A1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A3", "C3", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("can't write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
