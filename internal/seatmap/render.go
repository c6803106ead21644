// Package seatmap renders the reservation grid for the status, watch and
// tui commands. One line per row: the row letter followed by a glyph per
// seat, free seats dim green dots and reserved seats red blocks.
package seatmap

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hallward/usher/internal/ledger"
)

// Highlight marks a seat cell the renderer should emphasize, used by the
// interactive picker for the cursor and the pending selection.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightCursor
	HighlightSelected
)

// Options controls optional rendering features.
type Options struct {
	// Title is rendered above the grid when non-empty.
	Title string

	// ShowLegend appends the glyph legend under the grid.
	ShowLegend bool

	// HighlightFn, when non-nil, is consulted per seat cell.
	HighlightFn func(row byte, seat int) Highlight
}

// Render draws the given rows as a seat grid. Rows are drawn in the order
// provided; callers sort or filter beforehand. An empty row set renders a
// placeholder line instead of an empty grid.
func Render(rows []ledger.RowState, opts Options) string {
	var sections []string

	if opts.Title != "" {
		sections = append(sections, Title.Render(opts.Title))
	}

	if len(rows) == 0 {
		sections = append(sections, Muted.Render("(no rows)"))
	} else {
		sections = append(sections, renderHeader(len(rows[0].Seats)))
		for _, r := range rows {
			sections = append(sections, renderRow(r, opts.HighlightFn))
		}
	}

	if opts.ShowLegend {
		legend := FreeGlyph + " free  " + ReservedGlyph + " reserved"
		sections = append(sections, Legend.Render(legend))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderHeader draws the seat index ruler above the grid.
func renderHeader(rowSize int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < rowSize; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(i % 10))
	}
	return Muted.Render(sb.String())
}

func renderRow(r ledger.RowState, highlightFn func(byte, int) Highlight) string {
	cells := make([]string, 0, len(r.Seats)+1)
	cells = append(cells, RowLabel.Render(string(r.Row)))

	for i, reserved := range r.Seats {
		glyph := FreeGlyph
		style := Free
		if reserved {
			glyph = ReservedGlyph
			style = Reserved
		}

		if highlightFn != nil {
			switch highlightFn(r.Row, i) {
			case HighlightCursor:
				style = Cursor
			case HighlightSelected:
				style = Selected
			}
		}
		cells = append(cells, style.Render(glyph))
	}

	return strings.Join(cells, " ")
}
