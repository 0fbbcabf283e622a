package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// palette is shared by all styled output.
var palette = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
}{
	Primary: lipgloss.Color("#7C3AED"),
	Muted:   lipgloss.Color("#6C7086"),
	Success: lipgloss.Color("#A6E3A1"),
	Error:   lipgloss.Color("#F38BA8"),
	Border:  lipgloss.Color("#45475A"),
}

// styles renders to w, with colour only when w is a terminal.
type styles struct {
	tty     bool
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	s := &styles{}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.tty = true
	}
	if !s.tty {
		plain := lipgloss.NewStyle()
		s.Title, s.Muted, s.Success, s.Error, s.Border = plain, plain, plain, plain, plain
		s.Header = plain.Padding(0, 1)
		s.Cell = plain.Padding(0, 1)
		return s
	}
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(palette.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(palette.Muted)
	s.Success = lipgloss.NewStyle().Foreground(palette.Success)
	s.Error = lipgloss.NewStyle().Bold(true).Foreground(palette.Error)
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(palette.Primary).Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Border = lipgloss.NewStyle().Foreground(palette.Border)
	return s
}

// table renders rows under headers.
func (s *styles) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
