// Package tui implements the interactive seat picker: a Bubbletea model
// that moves a cursor over the seat grid, grows a contiguous selection
// within one row, and books or cancels the selection in place.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hallward/usher/internal/booking"
	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/seatmap"
)

// Model is the Bubbletea model for the seat picker.
type Model struct {
	svc  booking.Service
	rows []ledger.RowState

	cursorRow  int // index into rows
	cursorSeat int
	anchor     int // selection anchor seat in the cursor row, -1 when none

	status string
}

// NewModel creates a picker over the given reservation service.
func NewModel(svc booking.Service) Model {
	return Model{
		svc:    svc,
		rows:   svc.Rows(),
		anchor: -1,
		status: "move with arrows, space to select, b book, c cancel, q quit",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}
	return m, nil
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.anchor >= 0 && msg.String() == "esc" {
			m.anchor = -1
			m.status = "selection cleared"
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
			m.anchor = -1
			m.clampSeat()
		}

	case "down", "j":
		if m.cursorRow < len(m.rows)-1 {
			m.cursorRow++
			m.anchor = -1
			m.clampSeat()
		}

	case "left", "h":
		if m.cursorSeat > 0 {
			m.cursorSeat--
		}

	case "right", "l":
		if len(m.rows) > 0 && m.cursorSeat < len(m.rows[m.cursorRow].Seats)-1 {
			m.cursorSeat++
		}

	case " ":
		if m.anchor < 0 {
			m.anchor = m.cursorSeat
			m.status = "selection started, extend with left/right"
		} else {
			m.anchor = -1
			m.status = "selection cleared"
		}

	case "b":
		return m.applySelection(true), nil

	case "c":
		return m.applySelection(false), nil
	}

	return m, nil
}

// clampSeat keeps the cursor inside the current row after row changes.
func (m *Model) clampSeat() {
	if len(m.rows) == 0 {
		return
	}
	if max := len(m.rows[m.cursorRow].Seats) - 1; m.cursorSeat > max {
		m.cursorSeat = max
	}
}

// selection returns the selected seat range in the cursor row.
// Without an anchor the selection is just the cursor seat.
func (m Model) selection() (start, count int) {
	if m.anchor < 0 {
		return m.cursorSeat, 1
	}
	if m.anchor <= m.cursorSeat {
		return m.anchor, m.cursorSeat - m.anchor + 1
	}
	return m.cursorSeat, m.anchor - m.cursorSeat + 1
}

// applySelection books or cancels the current selection and refreshes the
// grid snapshot from the service.
func (m Model) applySelection(book bool) Model {
	if len(m.rows) == 0 {
		m.status = "no rows loaded"
		return m
	}

	row := m.rows[m.cursorRow].Row
	start, count := m.selection()
	seat := ledger.Seat{Row: row, Number: start}

	var err error
	verb := "booked"
	if book {
		err = m.svc.Book(seat, count)
	} else {
		verb = "canceled"
		err = m.svc.Cancel(seat, count)
	}

	if err != nil {
		m.status = fmt.Sprintf("FAIL: %v", err)
	} else {
		m.status = fmt.Sprintf("SUCCESS: %s %d seat(s) from %s", verb, count, seat.Label())
	}

	m.rows = m.svc.Rows()
	m.anchor = -1
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	grid := seatmap.Render(m.rows, seatmap.Options{
		Title:       "usher seat picker",
		ShowLegend:  true,
		HighlightFn: m.highlight,
	})

	status := seatmap.Muted.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, grid, status) + "\n"
}

// highlight marks the cursor cell and the pending selection range.
func (m Model) highlight(row byte, seat int) seatmap.Highlight {
	if len(m.rows) == 0 || m.rows[m.cursorRow].Row != row {
		return seatmap.HighlightNone
	}
	if seat == m.cursorSeat {
		return seatmap.HighlightCursor
	}
	if m.anchor >= 0 {
		start, count := m.selection()
		if seat >= start && seat < start+count {
			return seatmap.HighlightSelected
		}
	}
	return seatmap.HighlightNone
}
