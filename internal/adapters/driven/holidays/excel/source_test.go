package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/core/domain"
)

// writeWorkbook saves rows to Sheet1 of a new workbook.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holidays.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSource_Describe(t *testing.T) {
	s := NewSource(Options{Path: "/tmp/x/holidays.xlsx", Sheet: "2023"}, nil)
	assert.Equal(t, "xlsx:holidays.xlsx!2023", s.Describe())

	s = NewSource(Options{Path: "holidays.xlsx"}, nil)
	assert.Equal(t, "xlsx:holidays.xlsx", s.Describe())
}

func TestSource_Fetch_MixedCells(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Date", "Holiday"},
		{44928, "New Year's Day (observed)"},
		{"2023-01-16", "Martin Luther King Jr. Day"},
		{"", "blank row"},
		{"2/20/2023"},
	})

	s := NewSource(Options{Path: path, NameColumn: "B", HeaderRows: 1}, datevalue.NewResolver())
	holidays, err := s.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Holiday{
		{Date: 44928, Name: "New Year's Day (observed)"},
		{Date: 44942, Name: "Martin Luther King Jr. Day"},
		{Date: 44977},
	}, holidays)
}

func TestSource_Fetch_OtherColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"x", 44928},
		{"y", 44942},
	})

	s := NewSource(Options{Path: path, Sheet: "Sheet1", Column: "B"}, datevalue.NewResolver())
	holidays, err := s.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, domain.CanonicalDate(44942), holidays[1].Date)
	assert.Empty(t, holidays[1].Name)
}

func TestSource_Fetch_BadCell(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"2023-01-16"},
		{"next tuesday"},
	})

	s := NewSource(Options{Path: path}, datevalue.NewResolver())
	_, err := s.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell A2")
	assert.ErrorIs(t, err, domain.ErrDateResolution)
}

func TestSource_Fetch_Errors(t *testing.T) {
	resolver := datevalue.NewResolver()
	ctx := context.Background()

	_, err := NewSource(Options{Path: filepath.Join(t.TempDir(), "missing.xlsx")}, resolver).Fetch(ctx)
	assert.Error(t, err)

	path := writeWorkbook(t, [][]any{{44928}})
	_, err = NewSource(Options{Path: path, Column: "1"}, resolver).Fetch(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewSource(Options{Path: path, HeaderRows: -1}, resolver).Fetch(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewSource(Options{Path: path, Sheet: "Nope"}, resolver).Fetch(ctx)
	assert.Error(t, err)

	_, err = NewSource(Options{Path: path}, nil).Fetch(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "us.xlsx")
	cal := &domain.HolidayCalendar{
		Name: "us",
		Holidays: []domain.Holiday{
			{Date: 44928, Name: "New Year's Day (observed)"},
			{Date: 44942, Name: "Martin Luther King Jr. Day"},
			{Date: 45108, Name: "Independence Day"},
		},
	}

	require.NoError(t, Export(path, "", cal))

	s := NewSource(Options{Path: path, Sheet: "Holidays", NameColumn: "B", HeaderRows: 1}, datevalue.NewResolver())
	holidays, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cal.Holidays, holidays)
}

func TestExport_DateFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "us.xlsx")
	cal := &domain.HolidayCalendar{Holidays: []domain.Holiday{{Date: 44942}}}
	require.NoError(t, Export(path, "Dates", cal))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	formatted, err := f.GetCellValue("Dates", "A2")
	require.NoError(t, err)
	assert.NotEqual(t, "44942", formatted)
	assert.Contains(t, formatted, "16")

	raw, err := f.GetCellValue("Dates", "A2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "44942", raw)
}

func TestExport_NilCalendar(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "x.xlsx"), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
