// Package booking ties the seat ledger and the file store into the one
// operation a CLI invocation performs: load state, book or cancel a
// contiguous seat range, persist, report success or failure.
//
// Persistence after a successful mutation is best-effort. A failed save is
// logged as a warning and the operation still reports success: the
// in-memory ledger stays authoritative for the rest of the process even
// when the file on disk is stale.
package booking
