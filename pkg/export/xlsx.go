// Package export writes the vocabulary deck to spreadsheet files for
// study outside the app.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kashinote/kashinote/pkg/vocab"
)

const sheetName = "Vocabulary"

var header = []string{"Word", "Reading", "Part of Speech", "Base Form", "Meaning", "Added", "Reviews", "Mastery"}

// WriteXLSX writes entries, in deck order, to an .xlsx workbook at path.
func WriteXLSX(path string, entries []*vocab.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, e := range entries {
		values := []interface{}{
			e.Word,
			e.Reading,
			e.PartOfSpeech,
			e.BaseForm,
			e.Meaning,
			e.AddedAt.Format(time.RFC3339),
			e.ReviewCount,
			e.MasteryLevel,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
