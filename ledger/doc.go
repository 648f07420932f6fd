// Package ledger keeps an append-only journal of the rounds settled during a
// session, used for the summary shown when the player leaves the table.
//
// # Core Components
//
// Journal: the log of settled rounds with hash chaining for tamper detection.
//
// Entry: a single settled round with its rule variant, the settlement and the
// cryptographic link to the previous entry.
//
// # Properties
//
// Entries cannot be modified once appended, and Verify walks the whole chain
// checking indexes, links and hashes. The journal lives in memory only.
package ledger
