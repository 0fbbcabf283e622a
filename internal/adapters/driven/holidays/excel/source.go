package excel

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.HolidaySource = (*Source)(nil)

var log = logger.Component("excel")

// Options selects where holidays live in a workbook.
type Options struct {
	// Path is the workbook file.
	Path string

	// Sheet is the worksheet name. Empty means the first sheet.
	Sheet string

	// Column holds the dates, as a column letter. Defaults to "A".
	Column string

	// NameColumn optionally holds holiday names.
	NameColumn string

	// HeaderRows are skipped before reading.
	HeaderRows int
}

// Source is a driven.HolidaySource backed by an xlsx workbook.
type Source struct {
	opts     Options
	resolver driven.DateValueResolver
}

// NewSource creates a workbook source. Cell values are resolved with resolver.
func NewSource(opts Options, resolver driven.DateValueResolver) *Source {
	if opts.Column == "" {
		opts.Column = "A"
	}
	return &Source{opts: opts, resolver: resolver}
}

// Describe returns "xlsx:<file>[!sheet]".
func (s *Source) Describe() string {
	desc := "xlsx:" + filepath.Base(s.opts.Path)
	if s.opts.Sheet != "" {
		desc += "!" + s.opts.Sheet
	}
	return desc
}

// Fetch reads the holiday column. Empty cells are skipped; any other cell
// that does not resolve to a date fails the whole read with its cell reference.
func (s *Source) Fetch(ctx context.Context) ([]domain.Holiday, error) {
	if s.resolver == nil {
		return nil, domain.ErrNotImplemented
	}
	if s.opts.HeaderRows < 0 {
		return nil, fmt.Errorf("header rows must not be negative: %w", domain.ErrInvalidInput)
	}

	dateCol, err := columnIndex(s.opts.Column)
	if err != nil {
		return nil, err
	}
	nameCol := -1
	if s.opts.NameColumn != "" {
		if nameCol, err = columnIndex(s.opts.NameColumn); err != nil {
			return nil, err
		}
	}

	f, err := excelize.OpenFile(s.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	log.Debug("sheet %q: %d row(s), dates in column %s", sheet, len(rows), s.opts.Column)

	var holidays []domain.Holiday
	for i, row := range rows {
		if i < s.opts.HeaderRows {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if dateCol >= len(row) || strings.TrimSpace(row[dateCol]) == "" {
			continue
		}

		d, err := s.resolver.Resolve(row[dateCol])
		if err != nil {
			cell, _ := excelize.CoordinatesToCellName(dateCol+1, i+1)
			var resErr *domain.DateResolutionError
			if errors.As(err, &resErr) && resErr.Reason != "" {
				return nil, fmt.Errorf("cell %s: %s: %w", cell, resErr.Reason, err)
			}
			return nil, fmt.Errorf("cell %s: %w", cell, err)
		}

		h := domain.Holiday{Date: d}
		if nameCol >= 0 && nameCol < len(row) {
			h.Name = strings.TrimSpace(row[nameCol])
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

// columnIndex converts a column letter to a zero-based index.
func columnIndex(col string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(col))
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, domain.ErrInvalidInput)
	}
	return n - 1, nil
}
