// Package ledger owns the in-memory seat reservation state for a theater.
//
// A [Ledger] maps row letters to fixed-size rows of seats and offers atomic
// book/cancel operations over contiguous seat ranges. All methods are safe
// for concurrent use via an internal sync.RWMutex.
//
// The ledger also defines the persisted text format, one line per row:
//
//	A:01100000
//
// where the row letter is followed by one '0' (free) or '1' (reserved)
// character per seat in index order. See [Encode] and [Decode].
//
// # Failure semantics
//
// Operations never partially apply: the requested range is validated in
// full before any seat is touched, and a failure leaves every seat in the
// range unchanged. Failures are reported through sentinel errors
// ([ErrUnknownRow], [ErrOutOfRange], [ErrSeatReserved], [ErrSeatFree]) so
// callers can collapse them to a boolean outcome or report detail.
package ledger
