package ledger

import (
	"errors"
	"testing"
)

func TestNewFull(t *testing.T) {
	l := NewFull(DefaultLayout)

	rows := l.Rows()
	if len(rows) != 20 {
		t.Fatalf("Rows() returned %d rows, want 20", len(rows))
	}
	if rows[0].Row != 'A' || rows[19].Row != 'T' {
		t.Errorf("row range = %c..%c, want A..T", rows[0].Row, rows[19].Row)
	}
	for _, r := range rows {
		if len(r.Seats) != 8 {
			t.Errorf("row %c has %d seats, want 8", r.Row, len(r.Seats))
		}
		for i, reserved := range r.Seats {
			if reserved {
				t.Errorf("fresh ledger: seat %c%d is reserved", r.Row, i)
			}
		}
	}
}

func TestBookAndCancelRoundTrip(t *testing.T) {
	l := NewFull(DefaultLayout)

	if err := l.Book('A', 0, 3); err != nil {
		t.Fatalf("Book(A, 0, 3) = %v, want nil", err)
	}
	for i := 0; i < 3; i++ {
		if !l.Reserved('A', i) {
			t.Errorf("seat A%d not reserved after booking", i)
		}
	}
	for i := 3; i < 8; i++ {
		if l.Reserved('A', i) {
			t.Errorf("seat A%d reserved but was not booked", i)
		}
	}

	if err := l.Cancel('A', 0, 3); err != nil {
		t.Fatalf("Cancel(A, 0, 3) = %v, want nil", err)
	}
	for i := 0; i < 8; i++ {
		if l.Reserved('A', i) {
			t.Errorf("seat A%d still reserved after cancel", i)
		}
	}
}

func TestBookFailsOnReservedSeat(t *testing.T) {
	l := NewFull(DefaultLayout)

	if err := l.Book('B', 2, 1); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	// Range overlaps the reserved B2; nothing in it may change.
	if err := l.Book('B', 0, 4); !errors.Is(err, ErrSeatReserved) {
		t.Fatalf("Book over reserved seat = %v, want ErrSeatReserved", err)
	}
	for i := 0; i < 8; i++ {
		want := i == 2
		if got := l.Reserved('B', i); got != want {
			t.Errorf("seat B%d reserved = %v, want %v", i, got, want)
		}
	}
}

func TestCancelFailsOnFreeSeat(t *testing.T) {
	l := NewFull(DefaultLayout)

	if err := l.Book('C', 0, 2); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	if err := l.Cancel('C', 0, 4); !errors.Is(err, ErrSeatFree) {
		t.Fatalf("Cancel over free seat = %v, want ErrSeatFree", err)
	}
	for i := 0; i < 8; i++ {
		want := i < 2
		if got := l.Reserved('C', i); got != want {
			t.Errorf("seat C%d reserved = %v, want %v", i, got, want)
		}
	}
}

func TestRangeValidation(t *testing.T) {
	tests := []struct {
		name  string
		row   byte
		start int
		count int
		want  error
	}{
		{"unknown row", 'Z', 0, 1, ErrUnknownRow},
		{"touches boundary", 'A', 6, 3, ErrOutOfRange},
		{"exceeds boundary", 'A', 8, 1, ErrOutOfRange},
		{"far past boundary", 'A', 12, 1, ErrOutOfRange},
		{"negative start", 'A', -1, 2, ErrOutOfRange},
		{"zero count", 'A', 0, 0, ErrOutOfRange},
		{"negative count", 'A', 4, -2, ErrOutOfRange},
		{"full row ok", 'A', 0, 8, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewFull(DefaultLayout)
			err := l.Book(tt.row, tt.start, tt.count)
			if !errors.Is(err, tt.want) {
				t.Errorf("Book(%c, %d, %d) = %v, want %v", tt.row, tt.start, tt.count, err, tt.want)
			}
			if tt.want != nil {
				for i := 0; i < 8; i++ {
					if l.Reserved('A', i) {
						t.Errorf("seat A%d mutated by failed booking", i)
					}
				}
			}
		})
	}
}

func TestRowAbsentFromLoadedState(t *testing.T) {
	// Only row A survives loading; every other row must fail.
	l := FromRows(DefaultLayout, []RowState{
		{Row: 'A', Seats: make([]bool, 8)},
	})

	if err := l.Book('A', 0, 1); err != nil {
		t.Errorf("Book on present row = %v, want nil", err)
	}
	if err := l.Book('B', 0, 1); !errors.Is(err, ErrUnknownRow) {
		t.Errorf("Book on absent row = %v, want ErrUnknownRow", err)
	}
}

func TestFromRowsDropsWrongSizeRows(t *testing.T) {
	l := FromRows(DefaultLayout, []RowState{
		{Row: 'A', Seats: make([]bool, 8)},
		{Row: 'B', Seats: make([]bool, 5)},
	})

	rows := l.Rows()
	if len(rows) != 1 || rows[0].Row != 'A' {
		t.Errorf("FromRows kept %d rows, want just A", len(rows))
	}
}

func TestRowsSnapshotIsolation(t *testing.T) {
	l := NewFull(DefaultLayout)
	rows := l.Rows()
	rows[0].Seats[0] = true

	if l.Reserved('A', 0) {
		t.Error("mutating a Rows() snapshot leaked into the ledger")
	}
}
