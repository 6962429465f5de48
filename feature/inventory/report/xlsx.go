package report

import (
	"fmt"
	"io"

	"inventory-reconciler/feature/inventory/models"

	"github.com/xuri/excelize/v2"
)

var sheetNames = map[Category]string{
	CategoryForeign:  "Foreign",
	CategoryNotFound: "Not found",
	CategoryFound:    "Found",
}

var xlsxHeader = []interface{}{"Found", "Found in spaces", "Date", "Inventory number", "Expected space", "Label"}

// Workbook builds a spreadsheet with one sheet per category. The caller
// closes the returned file; on error it is already closed.
func Workbook(r Report, layout models.Layout) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, r, layout); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, r Report, layout models.Layout) error {
	for i, c := range Categories {
		name := sheetNames[c]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		if err := f.SetSheetRow(name, "A1", &xlsxHeader); err != nil {
			return err
		}
		for j, rec := range r.Records(c) {
			row := []interface{}{
				rec.FoundCount,
				rec.Encode(layout)[1],
				rec.Date,
				rec.InventoryNumber,
				rec.ExpectedSpace,
				rec.Label,
			}
			for _, p := range rec.Passthrough {
				row = append(row, p)
			}
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteXLSX writes the report workbook to w.
func WriteXLSX(w io.Writer, r Report, layout models.Layout) error {
	f, err := Workbook(r, layout)
	if err != nil {
		return fmt.Errorf("failed to build report workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write report workbook: %w", err)
	}
	return nil
}
