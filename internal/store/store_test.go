package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reservations.txt")
	return New(path, ledger.DefaultLayout, logging.NopLogger())
}

func TestLoadMissingFileInitializesAllRows(t *testing.T) {
	s := newTestStore(t)

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := l.Rows()
	if len(rows) != 20 {
		t.Fatalf("fresh load produced %d rows, want 20", len(rows))
	}
	for _, r := range rows {
		for i, reserved := range r.Seats {
			if reserved {
				t.Errorf("fresh load: seat %c%d reserved", r.Row, i)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := l.Book('A', 0, 3); err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if err := l.Book('K', 5, 2); err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	want := l.Rows()
	got := reloaded.Rows()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Row != want[i].Row {
			t.Fatalf("row %d = %c, want %c", i, got[i].Row, want[i].Row)
		}
		for j := range want[i].Seats {
			if got[i].Seats[j] != want[i].Seats[j] {
				t.Errorf("seat %c%d = %v, want %v", want[i].Row, j, got[i].Seats[j], want[i].Seats[j])
			}
		}
	}
}

func TestSaveReplacesPreviousContents(t *testing.T) {
	s := newTestStore(t)

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := l.Book('A', 0, 8); err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := l.Cancel('A', 0, 8); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		if reloaded.Reserved('A', i) {
			t.Errorf("seat A%d reserved after cancel+save, want free", i)
		}
	}
}

func TestLoadKeepsRowsMissingFromFileAbsent(t *testing.T) {
	s := newTestStore(t)

	// A hand-written file holding only row C. Unlike the missing-file case,
	// the other rows must stay absent.
	if err := os.WriteFile(s.Path(), []byte("C:00110000\n"), 0644); err != nil {
		t.Fatalf("failed to seed state file: %v", err)
	}

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := l.Rows()
	if len(rows) != 1 || rows[0].Row != 'C' {
		t.Fatalf("loaded rows = %v, want only C", rows)
	}
	if err := l.Book('A', 0, 1); err != ledger.ErrUnknownRow {
		t.Errorf("Book on absent row = %v, want ErrUnknownRow", err)
	}
	if !l.Reserved('C', 2) || !l.Reserved('C', 3) {
		t.Error("seeded reservations on row C were not loaded")
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)

	content := "A:11110000\ngarbage line\nB:123\nC:00001111\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed state file: %v", err)
	}

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := l.Rows()
	if len(rows) != 2 {
		t.Fatalf("loaded %d rows, want 2 (A and C)", len(rows))
	}
	if rows[0].Row != 'A' || rows[1].Row != 'C' {
		t.Errorf("loaded rows %c, %c, want A, C", rows[0].Row, rows[1].Row)
	}
}

func TestSaveCreatesFile(t *testing.T) {
	s := newTestStore(t)

	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("state file exists before save")
	}
	l := ledger.NewFull(ledger.DefaultLayout)
	if err := s.Save(l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read state file: %v", err)
	}
	want := "A:00000000\n"
	if len(data) == 0 || string(data[:len(want)]) != want {
		t.Errorf("state file starts with %q, want %q", string(data), want)
	}
}
