// Package compare implements the unit price comparison engine.
//
// # Core Operations
//
//  1. [Normalize] : Converts a provisional [models.RawEntry] into a validated [models.Entry]
//     - Parses price, amount and quantity (quantity defaults to 1)
//     - Defaults a blank name to "Product <id>"
//     - Derives the unit price: price / (amount × quantity)
//
//  2. [Rank] : Orders entries by unit price and annotates savings
//     - Stable sort, so entries with equal unit prices keep their input order
//     - The last entry is the baseline (most expensive)
//     - Each entry's difference is what its package would cost at the baseline unit price, minus what it costs
//
//  3. [Summarize] : Derives the facts a host renders (cheapest, most expensive, all tied)
//
// # Sessions
//
// [Session] owns a caller-side collection and its identity [Sequence]. Submitting is atomic: the entry is normalized,
// inserted (or replaced by id) and the whole collection re-ranked, or nothing changes and the error is returned.
//
// # Errors
//
//   - [shared.ErrInvalidEntry] : a field was missing, non-numeric, zero or negative (see [FieldError])
//   - [shared.ErrInvariantViolation] : [Rank] received an entry that could not have come from [Normalize]
//   - [shared.ErrEntryNotFound] : edit or removal of an unknown id
//
// Nothing in this package performs I/O or locks. Hosts that share a Session across goroutines serialize access.
package compare
