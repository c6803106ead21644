package booking

import (
	"fmt"

	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/logging"
	"github.com/hallward/usher/internal/store"
)

// Service is the reservation surface the CLI and the interactive picker
// consume. Implementations report failures through the ledger's sentinel
// errors; any non-nil error means the operation changed nothing.
type Service interface {
	Book(seat ledger.Seat, count int) error
	Cancel(seat ledger.Seat, count int) error
	Rows() []ledger.RowState
}

// Manager owns a loaded ledger and persists it through a store after every
// successful mutation. It implements Service.
type Manager struct {
	ledger *ledger.Ledger
	store  *store.Store
	logger *logging.Logger
}

// New loads the persisted state through the store and returns a Manager
// operating on it. A nil logger is replaced with a no-op logger.
func New(st *store.Store, logger *logging.Logger) (*Manager, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	led, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("load reservation state: %w", err)
	}

	return &Manager{
		ledger: led,
		store:  st,
		logger: logger,
	}, nil
}

// Book reserves count contiguous seats starting at the given seat and
// persists the updated ledger. The persisted file may be stale after a
// save failure; the booking itself still stands.
func (m *Manager) Book(seat ledger.Seat, count int) error {
	if err := m.ledger.Book(seat.Row, seat.Number, count); err != nil {
		m.logger.Debug("booking rejected",
			"seat", seat.Label(),
			"count", count,
			"reason", err.Error(),
		)
		return err
	}

	m.persist()
	m.logger.Info("seats booked", "seat", seat.Label(), "count", count)
	return nil
}

// Cancel frees count contiguous seats starting at the given seat and
// persists the updated ledger, with the same best-effort save semantics
// as Book.
func (m *Manager) Cancel(seat ledger.Seat, count int) error {
	if err := m.ledger.Cancel(seat.Row, seat.Number, count); err != nil {
		m.logger.Debug("cancellation rejected",
			"seat", seat.Label(),
			"count", count,
			"reason", err.Error(),
		)
		return err
	}

	m.persist()
	m.logger.Info("seats canceled", "seat", seat.Label(), "count", count)
	return nil
}

// Rows returns a snapshot of the current reservation state, sorted by row.
func (m *Manager) Rows() []ledger.RowState {
	return m.ledger.Rows()
}

// Layout returns the theater geometry of the loaded ledger.
func (m *Manager) Layout() ledger.Layout {
	return m.ledger.Layout()
}

// persist writes the full ledger state, swallowing failures with a warning.
func (m *Manager) persist() {
	if err := m.store.Save(m.ledger); err != nil {
		m.logger.Warn("state not persisted, file may be stale",
			"path", m.store.Path(),
			"error", err,
		)
	}
}
