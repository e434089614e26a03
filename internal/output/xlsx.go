package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/dsagen/internal/builder"
)

const sheetName = "Records"

var xlsxHeader = []string{"Subject", "Module", "Topic", "Emotion", "Text"}

// WriteXLSX writes records as a review spreadsheet: a header row
// followed by one row per record, in record order.
func WriteXLSX(path string, records []builder.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	if err := writeRow(f, 1, xlsxHeader); err != nil {
		return err
	}

	for i, r := range records {
		row := []string{r.Subject, r.Module, r.Topic, r.Emotion, r.Text}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
