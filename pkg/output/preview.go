// pkg/output/preview.go

package output

import (
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/aggregate"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// wrapWidths caps the columns that carry long free text; their cells wrap.
var wrapWidths = map[int]int{
	1: 20, // Filesystem
	4: 20, // Extract - Path
	5: 25, // Owner/s
}

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	headerStyle = cellStyle.Bold(true)
)

// Preview prints the first maxRows rows as a bordered grid headed by the
// column names. A negative maxRows prints every row.
func Preview(w io.Writer, rows []aggregate.Row, maxRows int) error {
	shown := rows
	if maxRows >= 0 && maxRows < len(rows) {
		shown = rows[:maxRows]
	}

	values := make([][]string, 0, len(shown))
	for _, row := range shown {
		values = append(values, row.Values())
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(aggregate.Headers()...).
		Rows(values...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if width, ok := wrapWidths[col]; ok {
				style = style.Width(width)
			}
			return style
		})

	if _, err := fmt.Fprintf(w, "\n=== Filesystem Report (showing first %d of %d rows) ===\n", len(shown), len(rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, grid.Render())
	return err
}
