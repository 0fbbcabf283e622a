package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// dateNumFmt is the built-in "m/d/yyyy" number format.
const dateNumFmt = 14

// Export writes the calendar's holidays to a new workbook at path.
// Row 1 is a header, dates go in column A and names in column B, so the file
// reads back with Options{Column: "A", NameColumn: "B", HeaderRows: 1}.
func Export(path, sheet string, cal *domain.HolidayCalendar) error {
	if cal == nil {
		return domain.ErrInvalidInput
	}
	if sheet == "" {
		sheet = "Holidays"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Date", "Name"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}

	for i, h := range cal.Holidays {
		row := i + 2
		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		nameCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, dateCell, float64(h.Date)); err != nil {
			return fmt.Errorf("write %s: %w", dateCell, err)
		}
		if err := f.SetCellStyle(sheet, dateCell, dateCell, style); err != nil {
			return fmt.Errorf("style %s: %w", dateCell, err)
		}
		if err := f.SetCellValue(sheet, nameCell, h.Name); err != nil {
			return fmt.Errorf("write %s: %w", nameCell, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return fmt.Errorf("size columns: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 32); err != nil {
		return fmt.Errorf("size columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	log.Info("exported %d holiday(s) of %q to %s", len(cal.Holidays), cal.Name, path)
	return nil
}
