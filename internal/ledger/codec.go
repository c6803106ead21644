package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Encode writes the ledger's persisted text form to w: one line per present
// row in layout order, `<ROW>:<status chars>`, '1' reserved and '0' free.
// Rows absent from the ledger are skipped, not zero-filled.
func Encode(w io.Writer, l *Ledger) error {
	byRow := make(map[byte][]bool, l.layout.RowCount())
	for _, r := range l.Rows() {
		byRow[r.Row] = r.Seats
	}

	bw := bufio.NewWriter(w)
	for row := l.layout.FirstRow; row <= l.layout.LastRow; row++ {
		seats, ok := byRow[row]
		if !ok {
			continue
		}
		var sb strings.Builder
		sb.WriteByte(row)
		sb.WriteByte(':')
		for _, reserved := range seats {
			if reserved {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("write row %c: %w", row, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Decode parses the persisted text form from r and returns a ledger holding
// exactly the rows that were accepted. A line is accepted only when it has
// exactly two colon-separated fields, the first a single character and the
// second exactly layout.RowSize characters, each '0' or '1'. Malformed
// lines are skipped; skipped rows stay absent from the ledger.
func Decode(r io.Reader, layout Layout) (*Ledger, error) {
	var rows []RowState

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row, seats, ok := parseLine(scanner.Text(), layout.RowSize)
		if !ok {
			continue
		}
		rows = append(rows, RowState{Row: row, Seats: seats})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	return FromRows(layout, rows), nil
}

// parseLine validates a single `R:xxxxxxxx` line.
func parseLine(line string, rowSize int) (byte, []bool, bool) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 || len(parts[0]) != 1 {
		return 0, nil, false
	}
	status := parts[1]
	if len(status) != rowSize {
		return 0, nil, false
	}

	seats := make([]bool, rowSize)
	for i := 0; i < rowSize; i++ {
		switch status[i] {
		case '1':
			seats[i] = true
		case '0':
			seats[i] = false
		default:
			return 0, nil, false
		}
	}
	return parts[0][0], seats, true
}
