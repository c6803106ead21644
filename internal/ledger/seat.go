package ledger

import (
	"errors"
	"strconv"
)

// ErrBadSeatLabel is returned when a seat label cannot be parsed.
var ErrBadSeatLabel = errors.New("malformed seat label")

// Seat identifies a single seat by row letter and zero-based index.
type Seat struct {
	Row    byte
	Number int
}

// Label returns the CLI form of the seat, e.g. "A0".
func (s Seat) Label() string {
	return string(s.Row) + strconv.Itoa(s.Number)
}

// ParseSeat parses a CLI seat label such as "A0": one uppercase row letter
// immediately followed by a zero-based seat index. The index must be a
// non-negative decimal number. Whether the seat actually exists is for the
// ledger to decide.
func ParseSeat(label string) (Seat, error) {
	if len(label) < 2 {
		return Seat{}, ErrBadSeatLabel
	}
	row := label[0]
	if row < 'A' || row > 'Z' {
		return Seat{}, ErrBadSeatLabel
	}
	num, err := strconv.Atoi(label[1:])
	if err != nil || num < 0 {
		return Seat{}, ErrBadSeatLabel
	}
	return Seat{Row: row, Number: num}, nil
}
