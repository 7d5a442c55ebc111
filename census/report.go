// SPDX-License-Identifier: MIT
// File: report.go
// Role: text rendering of occurrences and final counts.
package census

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/neuromotif/motif"
)

// RenderOptions selects the report layout.
type RenderOptions struct {
	// Pretty renders a bordered table with a total row instead of
	// plain "Name: count" lines.
	Pretty bool
}

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#BDBDBD"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	countStyle  = cellStyle.Align(lipgloss.Right)
	zeroStyle   = countStyle.Foreground(muted)
	borderStyle = lipgloss.NewStyle().Foreground(muted)
)

// FormatMotif renders one verbose occurrence line: "<shape> (<Category>)".
func FormatMotif(s motif.Shape, c motif.Category) string {
	return fmt.Sprintf("%s (%s)", s, c)
}

// Render writes the tally in category order, zero counts included.
func Render(w io.Writer, t *Tally, ro RenderOptions) error {
	if t == nil {
		return ErrTallyNil
	}
	counts := t.Counts()

	if !ro.Pretty {
		for _, c := range counts {
			if _, err := fmt.Fprintf(w, "%s: %d\n", c.Name, c.N); err != nil {
				return fmt.Errorf("Render: %w", err)
			}
		}

		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Category", "Count").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			case row < len(counts) && counts[row].N == 0:
				return zeroStyle
			default:
				return countStyle
			}
		})
	for _, c := range counts {
		tbl.Row(c.Name, strconv.Itoa(c.N))
	}
	tbl.Row("Total", strconv.Itoa(t.Total()))

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}
