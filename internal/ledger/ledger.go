package ledger

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors returned by ledger operations.
var (
	// ErrUnknownRow is returned when the requested row is not present in the ledger.
	ErrUnknownRow = errors.New("row not present in ledger")

	// ErrOutOfRange is returned when a seat range falls outside the row.
	ErrOutOfRange = errors.New("seat range out of bounds")

	// ErrSeatReserved is returned when booking a range that contains a reserved seat.
	ErrSeatReserved = errors.New("seat already reserved")

	// ErrSeatFree is returned when canceling a range that contains a free seat.
	ErrSeatFree = errors.New("seat not reserved")
)

// Layout describes the theater geometry: a contiguous run of row letters,
// each with the same number of seats.
type Layout struct {
	FirstRow byte // inclusive, e.g. 'A'
	LastRow  byte // inclusive, e.g. 'T'
	RowSize  int  // seats per row
}

// DefaultLayout is the standard theater: rows A through T, 8 seats each.
var DefaultLayout = Layout{FirstRow: 'A', LastRow: 'T', RowSize: 8}

// Contains reports whether the row letter falls inside the layout.
func (la Layout) Contains(row byte) bool {
	return row >= la.FirstRow && row <= la.LastRow
}

// RowCount returns the number of rows in the layout.
func (la Layout) RowCount() int {
	return int(la.LastRow-la.FirstRow) + 1
}

// RowState is a point-in-time copy of one row, used for rendering and
// persistence. Seats[i] is true when seat i is reserved.
type RowState struct {
	Row   byte
	Seats []bool
}

// Ledger holds the reservation state for every present row.
// A row either exists with exactly Layout.RowSize seats or is absent;
// operations on absent rows fail with ErrUnknownRow.
type Ledger struct {
	mu     sync.RWMutex
	layout Layout
	rows   map[byte][]bool
}

// New creates an empty ledger with no rows. Rows must be added via
// loading ([FromRows]) before operations on them can succeed.
func New(layout Layout) *Ledger {
	return &Ledger{
		layout: layout,
		rows:   make(map[byte][]bool),
	}
}

// NewFull creates a ledger with every layout row present and all seats free.
// This is the fresh-install state used when no persisted file exists.
func NewFull(layout Layout) *Ledger {
	l := New(layout)
	for row := layout.FirstRow; row <= layout.LastRow; row++ {
		l.rows[row] = make([]bool, layout.RowSize)
	}
	return l
}

// FromRows creates a ledger containing exactly the given rows.
// Rows whose seat count does not match the layout are dropped.
func FromRows(layout Layout, rows []RowState) *Ledger {
	l := New(layout)
	for _, r := range rows {
		if len(r.Seats) != layout.RowSize {
			continue
		}
		seats := make([]bool, layout.RowSize)
		copy(seats, r.Seats)
		l.rows[r.Row] = seats
	}
	return l
}

// Layout returns the theater geometry this ledger was built with.
func (l *Ledger) Layout() Layout {
	return l.layout
}

// Book reserves the contiguous range [start, start+count) in the given row.
// The whole range must be inside the row and fully free; otherwise the
// matching sentinel error is returned and no seat is mutated.
func (l *Ledger) Book(row byte, start, count int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seats, err := l.checkRange(row, start, count)
	if err != nil {
		return err
	}
	for i := start; i < start+count; i++ {
		if seats[i] {
			return ErrSeatReserved
		}
	}
	for i := start; i < start+count; i++ {
		seats[i] = true
	}
	return nil
}

// Cancel frees the contiguous range [start, start+count) in the given row.
// The whole range must be inside the row and fully reserved; otherwise the
// matching sentinel error is returned and no seat is mutated.
func (l *Ledger) Cancel(row byte, start, count int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seats, err := l.checkRange(row, start, count)
	if err != nil {
		return err
	}
	for i := start; i < start+count; i++ {
		if !seats[i] {
			return ErrSeatFree
		}
	}
	for i := start; i < start+count; i++ {
		seats[i] = false
	}
	return nil
}

// checkRange validates the row and range while the write lock is held.
// The original tool only rejected an index equal to the row length; that
// left start values past the end to fault. The check here covers the full
// range: negative start, non-positive count, or overflow past the row.
func (l *Ledger) checkRange(row byte, start, count int) ([]bool, error) {
	seats, ok := l.rows[row]
	if !ok {
		return nil, ErrUnknownRow
	}
	if start < 0 || count < 1 || start+count > len(seats) {
		return nil, ErrOutOfRange
	}
	return seats, nil
}

// Reserved reports whether the given seat is currently reserved.
// Returns false for absent rows or out-of-range indices.
func (l *Ledger) Reserved(row byte, seat int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seats, ok := l.rows[row]
	if !ok || seat < 0 || seat >= len(seats) {
		return false
	}
	return seats[seat]
}

// Rows returns a snapshot of every present row, sorted by row letter.
func (l *Ledger) Rows() []RowState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]RowState, 0, len(l.rows))
	for row, seats := range l.rows {
		copied := make([]bool, len(seats))
		copy(copied, seats)
		out = append(out, RowState{Row: row, Seats: copied})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out
}
