// Package captable models how ownership of a private company's equity
// changes as founders, option pools, convertible instruments (SAFEs), and
// priced financing rounds are applied in sequence.
//
// The core functionalities include:
//   - Ledger Management: Recording every capitalization event (founding,
//     equity grants, SAFE signings, priced rounds) as an immutable,
//     ordered command log, and deriving exact share counts from it.
//   - SAFE Conversion: Converting outstanding pre-money and post-money
//     SAFEs into preferred shares when a priced round executes, applying
//     the cap-vs-discount tie-break and the post-money fixed-point
//     pre-pass that resolves cross-dependent conversion prices.
//   - Snapshot History: Keeping an append-only history of point-in-time
//     cap table snapshots, each with per-entry ownership percentages
//     computed against that snapshot's own share total.
//   - Data Persistence: Encoding and decoding the command log to and from
//     a human-readable, version-controllable JSONL format.
//
// The package tracks share counts and percentages only; share classes'
// legal preferences (liquidation preference, anti-dilution, voting) are
// out of scope. A ledger is owned by a single caller and is not safe for
// concurrent mutation; wrap it in a mutex if several goroutines must
// share one.
package captable
